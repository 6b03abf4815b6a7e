// Package command turns command line tokens into the single operation an
// invocation performs.
package command

import (
	"github.com/ja-he/todo/internal/model"
)

// Kind identifies the operation of a Command.
type Kind int

const (
	Invalid Kind = iota
	Help
	Version
	List
	Get
	Delete
	Clear
	Create
)

func (k Kind) String() string {
	switch k {
	case Help:
		return "help"
	case Version:
		return "version"
	case List:
		return "list"
	case Get:
		return "get"
	case Delete:
		return "delete"
	case Clear:
		return "clear"
	case Create:
		return "create"
	default:
		return "invalid"
	}
}

// Command is a parsed invocation.
// ID is only meaningful for Get and Delete, Draft only for Create.
type Command struct {
	Kind  Kind
	ID    string
	Draft model.PlanDraft
}

// dot in second position marks a plan that only has a start time.
const startOnlyMarker = "."

// Parse determines the command described by the given tokens, where tokens[0]
// is the program name.
//
// Parse never fails: tokens that fit no known shape yield an Invalid command.
// The recognized shapes are checked in order, so e.g. '--help' is only help
// when it is the sole argument.
//
// Plans are created from one of three shapes:
//
//	<time> <title>           plan ending at <time>
//	<time> . <title>         plan starting at <time>
//	<time> <time> <title>    plan spanning the two times
//
// Titles are taken verbatim, so '09:00 10:00' creates a plan titled '10:00'
// ending at 09:00, and a plan spanning two times can't be titled '.'.
func Parse(tokens []string) Command {
	var args []string
	if len(tokens) > 1 {
		args = tokens[1:]
	}

	switch {
	case len(args) == 0 || len(args) == 1 && isOneOf(args[0], "--help", "-h"):
		return Command{Kind: Help}
	case len(args) == 1 && isOneOf(args[0], "--version", "-v"):
		return Command{Kind: Version}
	case len(args) == 1 && isOneOf(args[0], "--list", "-l"):
		return Command{Kind: List}
	case len(args) == 2 && isOneOf(args[0], "--delete", "-d"):
		return Command{Kind: Delete, ID: args[1]}
	case len(args) == 2 && isOneOf(args[0], "--get", "-g"):
		return Command{Kind: Get, ID: args[1]}
	case len(args) == 1 && isOneOf(args[0], "--clear", "-c"):
		return Command{Kind: Clear}
	}

	draft, ok := parseDraft(args)
	if !ok {
		return Command{Kind: Invalid}
	}
	return Command{Kind: Create, Draft: draft}
}

func parseDraft(args []string) (model.PlanDraft, bool) {
	switch len(args) {
	case 2:
		end, ok := model.ParseTimestamp(args[0])
		if !ok {
			return model.PlanDraft{}, false
		}
		return model.PlanDraft{Title: args[1], End: &end}, true

	case 3:
		start, ok := model.ParseTimestamp(args[0])
		if !ok {
			return model.PlanDraft{}, false
		}
		if args[1] == startOnlyMarker {
			return model.PlanDraft{Title: args[2], Start: &start}, true
		}
		end, ok := model.ParseTimestamp(args[1])
		if !ok {
			return model.PlanDraft{}, false
		}
		return model.PlanDraft{Title: args[2], Start: &start, End: &end}, true

	default:
		return model.PlanDraft{}, false
	}
}

func isOneOf(s string, candidates ...string) bool {
	for _, c := range candidates {
		if s == c {
			return true
		}
	}
	return false
}
