package styling

var DarkBackground = darkBackground
