// refframes doctor — probe the local environment.
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/astrodyn-tools/refframes/internal/health"
	"github.com/astrodyn-tools/refframes/pkg/errs"
	"github.com/astrodyn-tools/refframes/pkg/pprint"
)

func NewDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the kernel, cache, and output configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := FromContext(cmd.Context())

			var spin *pprint.Spinner
			if !rt.Flags.JSONOutput {
				spin = pprint.NewSpinner("Probing kernel, cache and output paths")
				spin.Start()
			}

			results := health.NewDoctor(rt.Config, rt.Log).Run(time.Now().UTC())
			healthy := health.Healthy(results)
			if spin != nil {
				spin.Stop(healthy)
			}

			if rt.Flags.JSONOutput {
				if err := json.NewEncoder(os.Stdout).Encode(results); err != nil {
					return err
				}
			} else {
				pprint.Header("Environment")
				tbl := pprint.NewTable("", "CHECK", "DETAIL")
				for _, r := range results {
					tbl.AddRow(statusIcon(r.Status), r.Name, r.Detail)
				}
				tbl.Render()
			}

			if !healthy {
				if !rt.Flags.JSONOutput {
					var failing []string
					for _, r := range results {
						if r.Status == health.StatusFail {
							failing = append(failing, fmt.Sprintf("%s: %s", r.Name, r.Detail))
						}
					}
					pprint.Panel("Failing checks", strings.Join(failing, "\n"))
				}
				return errs.Newf(errs.ErrValidation, "doctor", "one or more checks failed")
			}
			return nil
		},
	}
}

func statusIcon(s health.Status) string {
	switch s {
	case health.StatusOK:
		return "✓"
	case health.StatusWarn:
		return "◐"
	default:
		return "✗"
	}
}
