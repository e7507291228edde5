package terminal

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/benefique/cfo-times/pkg/runtime/terminal/commands"
	"github.com/benefique/cfo-times/pkg/services/config"
	"github.com/benefique/cfo-times/pkg/services/generator"
)

// CLI represents the command-line interface
type CLI struct {
	env     *commands.Env
	viper   *viper.Viper
	output  io.Writer
	errOut  io.Writer
	rootCmd *cobra.Command

	configPath string
	verbose    bool
}

// Options contain configuration for the CLI
type Options struct {
	Generator *generator.Generator
	Viper     *viper.Viper
	Output    io.Writer
	ErrOutput io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}
	if opts.Viper == nil {
		opts.Viper = config.New()
	}

	cli := &CLI{
		env:    &commands.Env{Generator: opts.Generator},
		viper:  opts.Viper,
		output: opts.Output,
		errOut: opts.ErrOutput,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "cfotimes",
		Short:             "Render The Financial Times CFO report for a client",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.setup,
	}
	cmd.SetOut(cli.output)
	cmd.SetErr(cli.errOut)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&cli.configPath, "config", "c", "", "Path to cfotimes.yaml (default ./cfotimes.yaml or ~/.config/cfotimes/cfotimes.yaml)")
	flags.StringVar(&cli.env.ProfilesFile, "profiles-file", "", "Path to the client profiles file (default $HOME/.cfotimes.ini)")
	flags.BoolVarP(&cli.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(commands.NewRenderCmd(cli.env))
	cmd.AddCommand(commands.NewValidateCmd(cli.env))
	cmd.AddCommand(commands.NewProfilesCmd(cli.env))

	return cmd
}

// setup loads settings and attaches the root logger to the command context.
func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.Load(cli.viper, cli.configPath)
	if err != nil {
		return err
	}
	cli.env.Settings = settings

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if cli.verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(cli.errOut).Level(level).With().Timestamp().Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}
