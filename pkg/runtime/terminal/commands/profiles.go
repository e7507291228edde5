package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	env *Env
}

func NewProfilesCmd(env *Env) *cobra.Command {
	pc := &ProfilesCmd{env: env}
	return &cobra.Command{
		Use:   "profiles",
		Short: "List client profiles",
		Args:  cobra.NoArgs,
		RunE:  pc.run,
	}
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	profiles, err := pc.env.Profiles()
	if err != nil {
		return err
	}

	names, err := profiles.GetProfiles()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No profiles found")
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PROFILE\tSOURCE\tFORMAT\tOUTPUT")
	for _, name := range names {
		p, err := profiles.GetProfile(name)
		if err != nil {
			fmt.Fprintf(tw, "%s\t(%v)\t\t\n", name, err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Name, p.Source, p.Format, p.Output)
	}
	return tw.Flush()
}
