package commands

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/benefique/cfo-times/pkg/services/generator"
)

const loadTimeout = 60 * time.Second

type RenderCmd struct {
	env     *Env
	source  string
	profile string
	format  string
	output  string
}

func NewRenderCmd(env *Env) *cobra.Command {
	rc := &RenderCmd{env: env}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a report edition from a snapshot",
		Args:  cobra.NoArgs,
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.source, "source", "", "Snapshot URI (builtin:NAME, path, s3://bucket/key, azblob://account/container/blob)")
	cmd.Flags().StringVar(&rc.profile, "profile", "", "Client profile from the profiles file")
	cmd.Flags().StringVar(&rc.format, "format", "", "Output format (html, json, text, table)")
	cmd.Flags().StringVarP(&rc.output, "output", "o", "", "Output file, '-' for stdout")

	return cmd
}

// request merges settings, the selected profile and explicit flags, in
// increasing order of precedence.
func (rc *RenderCmd) request(cmd *cobra.Command) (generator.Request, string, error) {
	settings := rc.env.settings()
	req := generator.Request{
		Source:  settings.Source,
		Format:  settings.Format,
		Options: rc.env.sourceOptions(),
	}
	output := settings.Output

	if rc.profile != "" {
		profiles, err := rc.env.Profiles()
		if err != nil {
			return req, "", err
		}
		p, err := profiles.GetProfile(rc.profile)
		if err != nil {
			return req, "", err
		}
		req.Source = p.Source
		if p.Format != "" {
			req.Format = p.Format
		}
		if p.Output != "" {
			output = p.Output
		}
		if p.AWSProfile != "" {
			req.Options.AWSProfile = p.AWSProfile
		}
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		req.Source = rc.source
	}
	if flags.Changed("format") {
		req.Format = rc.format
	}
	if flags.Changed("output") {
		output = rc.output
	}

	if req.Source == "" {
		return req, "", fmt.Errorf("no snapshot source: use --source or --profile")
	}
	return req, output, nil
}

func (rc *RenderCmd) run(cmd *cobra.Command, _ []string) error {
	req, output, err := rc.request(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), loadTimeout)
	defer cancel()

	var buf bytes.Buffer
	if err := rc.env.Generator.Generate(ctx, req, &buf); err != nil {
		return err
	}

	if output == "" || output == "-" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Str("output", output).
		Str("format", req.Format).
		Int("bytes", buf.Len()).
		Msg("report written")
	return nil
}
