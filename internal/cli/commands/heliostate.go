// refframes heliostate — heliocentric state of a planet at an epoch.
package commands

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/astrodyn-tools/refframes/internal/ephemeris"
	"github.com/astrodyn-tools/refframes/internal/frames"
	"github.com/astrodyn-tools/refframes/internal/timeutil"
	"github.com/astrodyn-tools/refframes/pkg/pprint"
)

func NewHelioStateCmd() *cobra.Command {
	var (
		planet   string
		epochStr string
	)

	cmd := &cobra.Command{
		Use:   "heliostate",
		Short: "Print a planet's heliocentric state in the ecliptic frame",
		Long: "Query the DE kernel for the state of a planet relative to the Sun at a " +
			"given epoch, expressed in ECLIPJ2000. Outer planets resolve to their " +
			"planetary system barycenters.",
		Example: `  refframes heliostate -p Mars -e "2018-10-02T22:21:40"
  refframes heliostate -p Jupiter`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := FromContext(cmd.Context())

			src, err := rt.RequireSource()
			if err != nil {
				return err
			}

			epoch := time.Now().UTC()
			if epochStr != "" {
				epoch, err = timeutil.ParseEpoch(epochStr)
				if err != nil {
					return err
				}
			}

			jd := timeutil.JDTDB(epoch)
			body, st, err := ephemeris.HelioState(src, planet, jd)
			if err != nil {
				return err
			}
			st = frames.Apply(frames.Transform(frames.J2000, frames.EclipJ2000, jd), st)

			rAU := math.Sqrt(st[0]*st[0]+st[1]*st[1]+st[2]*st[2]) / ephemeris.AU

			if rt.Flags.JSONOutput {
				return json.NewEncoder(os.Stdout).Encode(map[string]any{
					"body":   body.Name,
					"frame":  frames.EclipJ2000.Name,
					"epoch":  epoch,
					"jd_tdb": jd,
					"state":  st,
					"r_au":   rAU,
				})
			}

			pprint.Header(body.Name + " / Sun")
			if !strings.EqualFold(body.Name, planet) {
				pprint.Info("%s resolves to %s in the DE kernel", planet, body.Name)
			}
			pprint.KV("Frame ", frames.EclipJ2000.Name)
			pprint.KV("Epoch ", epoch.Format("2006-01-02 15:04:05")+" UTC")
			pprint.KV("JD TDB", fmt.Sprintf("%.6f", jd))
			pprint.KV("r     ", fmt.Sprintf("%.6f AU", rAU))
			pprint.StateVector(st)
			return nil
		},
	}

	cmd.Flags().StringVarP(&planet, "planet", "p", "", "Planet name, e.g. Mars")
	cmd.Flags().StringVarP(&epochStr, "epoch", "e", "", "Epoch (defaults to now)")
	cmd.MarkFlagRequired("planet")
	return cmd
}
