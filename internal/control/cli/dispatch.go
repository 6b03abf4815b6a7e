package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/ja-he/todo/internal/config"
	"github.com/ja-he/todo/internal/control/command"
	"github.com/ja-he/todo/internal/model"
	"github.com/ja-he/todo/internal/storage"
	"github.com/ja-he/todo/internal/styling"
)

// Dispatcher carries out commands against a plan provider and prints the
// results.
type Dispatcher struct {
	provider storage.PlanProvider
	out      io.Writer
	format   config.Format
	styler   styling.Styler
	usage    string
	log      zerolog.Logger
}

// NewDispatcher creates a dispatcher printing to out in the given format.
// usage is what is printed for command.Help.
func NewDispatcher(
	provider storage.PlanProvider,
	out io.Writer,
	format config.Format,
	styler styling.Styler,
	usage string,
	logger zerolog.Logger,
) *Dispatcher {
	return &Dispatcher{
		provider: provider,
		out:      out,
		format:   format,
		styler:   styler,
		usage:    usage,
		log:      logger,
	}
}

// statusReport is what a bare status is printed as in structured formats.
type statusReport struct {
	Status string `json:"status" yaml:"status"`
	Code   int    `json:"code" yaml:"code"`
}

// Dispatch carries out the command.
//
// Any failure to talk to the plan server aborts the command and is returned;
// statuses the server answers with are printed but are not errors.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd command.Command) error {
	d.log.Debug().Stringer("command", cmd.Kind).Str("id", cmd.ID).Msg("dispatching")

	switch cmd.Kind {
	case command.Help:
		_, err := io.WriteString(d.out, d.usage)
		return err
	case command.Version:
		d.log.Debug().Str("hash", Hash()).Msg("version requested")
		_, err := fmt.Fprintf(d.out, "Version: %s\n", Version())
		return err
	case command.List:
		return d.list(ctx)
	case command.Get:
		return d.get(ctx, cmd.ID)
	case command.Delete:
		status, err := d.provider.RemovePlan(ctx, cmd.ID)
		return d.reportStatus(status, err)
	case command.Clear:
		status, err := d.provider.RemoveAllPlans(ctx)
		return d.reportStatus(status, err)
	case command.Create:
		d.checkDraft(cmd.Draft)
		status, err := d.provider.AddPlan(ctx, cmd.Draft)
		return d.reportStatus(status, err)
	default:
		_, err := fmt.Fprintln(d.out, "Invalid arguments")
		return err
	}
}

func (d *Dispatcher) list(ctx context.Context) error {
	status, ids, err := d.provider.GetPlanIDs(ctx)
	if d.format == config.FormatText && status.Code != 0 {
		d.printStatus(status)
	}
	if err != nil {
		return fmt.Errorf("could not list plans (%w)", err)
	}
	d.log.Debug().Int("count", len(ids)).Msg("got plan IDs")

	records := make([]model.PlanRecord, 0, len(ids))
	for _, id := range ids {
		idStr := fmt.Sprint(id)
		planStatus, plan, err := d.provider.GetPlan(ctx, idStr)
		if err != nil {
			return fmt.Errorf("could not get plan %s of list (%w)", idStr, err)
		}
		if !planStatus.Success() {
			d.log.Warn().Str("id", idStr).Stringer("status", planStatus).Msg("listed plan answered with non-success status")
		}
		if d.format == config.FormatText {
			fmt.Fprintf(d.out, "%q\n", plan.String())
		} else {
			records = append(records, plan.Record())
		}
	}

	if d.format == config.FormatText {
		return nil
	}
	return d.encode(records)
}

func (d *Dispatcher) get(ctx context.Context, id string) error {
	status, plan, err := d.provider.GetPlan(ctx, id)
	if d.format == config.FormatText && status.Code != 0 {
		d.printStatus(status)
	}
	if err != nil {
		return fmt.Errorf("could not get plan (%w)", err)
	}

	if d.format == config.FormatText {
		_, err := fmt.Fprintf(d.out, "%q\n", plan.String())
		return err
	}
	return d.encode(plan.Record())
}

func (d *Dispatcher) reportStatus(status storage.Status, err error) error {
	if err != nil {
		return err
	}
	if !status.Success() {
		d.log.Info().Stringer("status", status).Msg("plan server reported failure")
	}
	if d.format == config.FormatText {
		d.printStatus(status)
		return nil
	}
	return d.encode(statusReport{Status: status.String(), Code: status.Code})
}

func (d *Dispatcher) printStatus(status storage.Status) {
	fmt.Fprintf(d.out, "Status: %s\n", d.styler.Status(status))
}

// checkDraft logs about plans that are legal but likely not intended.
func (d *Dispatcher) checkDraft(draft model.PlanDraft) {
	if draft.Start == nil || draft.End == nil {
		return
	}
	if !draft.End.IsAfter(*draft.Start) {
		d.log.Warn().
			Stringer("start", draft.Start).
			Stringer("end", draft.End).
			Msg("plan does not end after it starts; submitting anyway")
		return
	}
	d.log.Debug().Int("minutes", draft.Start.DurationInMinutesUntil(*draft.End)).Msg("plan duration")
}

func (d *Dispatcher) encode(v any) error {
	switch d.format {
	case config.FormatJSON:
		enc := json.NewEncoder(d.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(d.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("no structured encoding for format '%s'", d.format)
	}
}
