// refframes horizon — generate a year's heliocentric CSV for a planet.
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/astrodyn-tools/refframes/internal/horizon"
	"github.com/astrodyn-tools/refframes/internal/timeutil"
	"github.com/astrodyn-tools/refframes/pkg/pprint"
)

func NewHorizonCmd() *cobra.Command {
	var (
		planet     string
		startStr   string
		endStr     string
		resolution string
		outDir     string
	)

	cmd := &cobra.Command{
		Use:   "horizon",
		Short: "Sweep a planet's heliocentric ephemeris over a year into CSV",
		Long: "Generate <planet>-<year>.csv with one heliocentric ecliptic state per " +
			"step, the file format the mission propagator loads. The sweep is " +
			"inclusive through end-of-day on the end date and must stay within a " +
			"single calendar year.",
		Example: `  refframes horizon -p Mars -s 2018-01-01 -e 2018-12-31 -r 1d
  refframes horizon -p Venus -s 2016-03-01 -e 2016-03-31 -r 15m`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := FromContext(cmd.Context())

			src, err := rt.RequireSource()
			if err != nil {
				return err
			}

			start, err := timeutil.ParseEpoch(startStr)
			if err != nil {
				return err
			}
			end, err := timeutil.ParseEpoch(endStr)
			if err != nil {
				return err
			}
			step, err := horizon.ParseResolution(resolution)
			if err != nil {
				return err
			}

			dir := outDir
			if dir == "" {
				dir = rt.Config.Output.HorizonDir
			}
			if dir == "" {
				dir = "."
			}

			opts := horizon.Options{
				Planet: planet,
				Start:  start,
				End:    end,
				Step:   step,
				Dir:    dir,
			}
			if !rt.Flags.JSONOutput {
				// One progress tick per month entered by the sweep.
				months := int(end.Month()-start.Month()) + 1
				bar := pprint.NewProgress(
					fmt.Sprintf("Sweeping %s %d at %s", planet, start.Year(), resolution),
					months, 24)
				done := 0
				opts.OnMonth = func(time.Month) {
					done++
					bar.Set(done)
				}
			}

			gen := horizon.NewGenerator(src, rt.Log)
			path, rows, err := gen.Run(opts)
			if err != nil {
				return err
			}

			if rt.Flags.JSONOutput {
				return json.NewEncoder(os.Stdout).Encode(map[string]any{
					"planet": planet,
					"path":   path,
					"rows":   rows,
				})
			}

			pprint.Success("Wrote %d rows to %s", rows, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&planet, "planet", "p", "", "Planet name, e.g. Mars")
	cmd.Flags().StringVarP(&startStr, "start", "s", "", "Start date, e.g. 2018-01-01")
	cmd.Flags().StringVarP(&endStr, "end", "e", "", "End date (inclusive, same year)")
	cmd.Flags().StringVarP(&resolution, "resolution", "r", "1d", "Step: <n>d, <n>m or <n>s")
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "Output directory (overrides output.horizon_dir)")
	cmd.MarkFlagRequired("planet")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")
	return cmd
}
