package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benefique/cfo-times/pkg/models/domain"
)

type ValidateCmd struct {
	env    *Env
	source string
}

func NewValidateCmd(env *Env) *cobra.Command {
	vc := &ValidateCmd{env: env}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a snapshot without rendering it",
		Args:  cobra.NoArgs,
		RunE:  vc.run,
	}

	cmd.Flags().StringVar(&vc.source, "source", "", "Snapshot URI to validate")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func (vc *ValidateCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), loadTimeout)
	defer cancel()

	out := cmd.OutOrStdout()
	s, err := vc.env.Generator.Load(ctx, vc.source, vc.env.sourceOptions())
	if err != nil {
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		for _, p := range verr.Problems {
			fmt.Fprintf(out, "  %s\n", p)
		}
		return fmt.Errorf("%s is invalid: %d problem(s)", vc.source, len(verr.Problems))
	}

	fmt.Fprintf(out, "%s is valid: %s, %s, %d entities\n",
		vc.source,
		s.Config.ClientName,
		s.Config.ReportDate.Format(domain.ReportDateLayout),
		len(s.Entities))
	return nil
}
