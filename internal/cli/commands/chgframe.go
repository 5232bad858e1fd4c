// refframes chgframe — convert a state vector between reference frames.
package commands

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/astrodyn-tools/refframes/internal/ephemeris"
	"github.com/astrodyn-tools/refframes/internal/frames"
	"github.com/astrodyn-tools/refframes/internal/timeutil"
	"github.com/astrodyn-tools/refframes/pkg/pprint"
)

func NewChgFrameCmd() *cobra.Command {
	var (
		stateStr string
		fromStr  string
		toStr    string
		epochStr string
	)

	cmd := &cobra.Command{
		Use:   "chgframe",
		Short: "Convert a state vector between reference frames",
		Long: "Rotate a position/velocity state vector from one frame to another at a " +
			"given epoch, translating the origin when the frames are centered on " +
			"different bodies.",
		Example: `  refframes chgframe -f IAU_Earth -t EclipJ2000 -e "2016-03-24T20:41:48" \
      -s "[-996776.12, -39776.10, 25123.28, -0.511, -0.691, -0.342]"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := FromContext(cmd.Context())

			src, err := rt.RequireSource()
			if err != nil {
				return err
			}

			st, err := ephemeris.ParseState(stateStr)
			if err != nil {
				return err
			}
			from, err := frames.Parse(fromStr)
			if err != nil {
				return err
			}
			to, err := frames.Parse(toStr)
			if err != nil {
				return err
			}
			epoch, err := timeutil.ParseEpoch(epochStr)
			if err != nil {
				return err
			}

			rt.Log.Debug("converting state",
				"from", from.Name, "to", to.Name, "jd_tdb", timeutil.JDTDB(epoch))

			out, err := frames.ChgFrame(st, from, to, epoch, src)
			if err != nil {
				return err
			}

			if rt.Flags.JSONOutput {
				return json.NewEncoder(os.Stdout).Encode(map[string]any{
					"from":   from.Name,
					"to":     to.Name,
					"epoch":  epoch,
					"jd_tdb": timeutil.JDTDB(epoch),
					"state":  out,
				})
			}

			pprint.Header("State in " + to.Name)
			pprint.KV("From  ", from.Name)
			pprint.KV("Epoch ", epoch.Format("2006-01-02 15:04:05")+" UTC")
			pprint.StateVector(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&stateStr, "state", "s", "", "State vector [x, y, z, vx, vy, vz] in km and km/s")
	cmd.Flags().StringVarP(&fromStr, "from", "f", "", "Source frame (J2000, ECLIPJ2000, IAU_<body>)")
	cmd.Flags().StringVarP(&toStr, "to", "t", "", "Destination frame")
	cmd.Flags().StringVarP(&epochStr, "epoch", "e", "", "Epoch, e.g. 2016-03-24T20:41:48")
	cmd.MarkFlagRequired("state")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	cmd.MarkFlagRequired("epoch")
	return cmd
}
