package cli

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"tablesel/internal/datatable"
	"tablesel/internal/domain"
)

// inspectReport is the JSON document printed by inspect
type inspectReport struct {
	Rows        int             `json:"rows"`
	Selected    []string        `json:"selected"`
	HeaderState domain.TriState `json:"headerState"`
	Events      []eventRecord   `json:"events"`
}

// eventRecord is one selection event observed while applying clicks
type eventRecord struct {
	Type   domain.EventType           `json:"type"`
	Detail *domain.RowSelectionDetail `json:"detail,omitempty"`
}

func newInspectCommand(a *app) *cobra.Command {
	var (
		toggleRows []int
		toggleAll  bool
	)

	cmd := &cobra.Command{
		Use:   "inspect rows-file",
		Short: "Print the selection state of a table as JSON",
		Long: `Load a row file without a terminal and print the row count, the
selected row ids and the header checkbox state as JSON.

Rows listed with --toggle are clicked in order, then the header checkbox
when --toggle-all is set. The events those clicks emit are included.`,
		Example: `  # Show the stored selection
  tablesel inspect users.yaml

  # Replace the selection, then click row 0 and the header checkbox
  tablesel inspect --select u2 --toggle 0 --toggle-all users.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.loadTable(cmd, args[0])
			if err != nil {
				return err
			}
			defer table.Destroy()

			report := inspectReport{Events: []eventRecord{}}
			record := func(e domain.DomainEvent) {
				rec := eventRecord{Type: e.Type()}
				if ev, ok := e.(domain.RowSelectionChangedEvent); ok {
					detail := ev.Detail
					rec.Detail = &detail
				}
				report.Events = append(report.Events, rec)
			}
			for _, et := range []domain.EventType{
				domain.EventRowSelectionChanged,
				domain.EventSelectedAll,
				domain.EventUnselectedAll,
			} {
				defer table.Listen(et, record)()
			}

			if err := applyClicks(table, toggleRows, toggleAll); err != nil {
				return err
			}

			report.Rows = table.GetRowCount()
			report.Selected = table.GetSelectedRowIDs()
			report.HeaderState = table.HeaderTriState()

			log.Debug().
				Int("rows", report.Rows).
				Int("events", len(report.Events)).
				Msg("Inspected table")

			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&toggleRows, "toggle", nil, "row indexes whose checkbox to click, in order")
	cmd.Flags().BoolVar(&toggleAll, "toggle-all", false, "click the header checkbox after the row clicks")

	return cmd
}

// applyClicks clicks row checkboxes by index, then the header checkbox
func applyClicks(table *datatable.DataTable, rows []int, header bool) error {
	elements := table.GetRows()
	for _, i := range rows {
		if i < 0 || i >= len(elements) {
			return fmt.Errorf("row index %d out of range [0, %d)", i, len(elements))
		}
		input := elements[i].Query(datatable.ClassRowCheckbox)
		if input == nil {
			return fmt.Errorf("row %d has no checkbox: rows are not selectable", i)
		}
		input.Click()
	}

	if header {
		input := table.Root().Query(datatable.ClassHeaderRowCheckbox)
		if input == nil {
			return fmt.Errorf("table has no header checkbox")
		}
		input.Click()
	}
	return nil
}
