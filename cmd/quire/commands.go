// Package quire wires the command tree for the quire binary.
package quire

import (
	"fmt"
	"os"

	"github.com/mvieira/quire/internal/version"
	"github.com/mvieira/quire/pkg/commands/build"
	"github.com/mvieira/quire/pkg/commands/check"
	"github.com/mvieira/quire/pkg/commands/genconfig"
	"github.com/mvieira/quire/pkg/commands/inspect"
	"github.com/mvieira/quire/pkg/commands/specimen"
	"github.com/mvieira/quire/pkg/logging"
	"github.com/mvieira/quire/pkg/style"
	"github.com/mvieira/quire/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity   int
		dryRun      bool
		projectRoot string
	)

	rootCmd := &cobra.Command{
		Use:     "quire",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given; show help but signal incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&projectRoot, "root", "", MsgFlagRoot)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newSpecimenCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// rootFlags reads the persistent flags shared by all commands
func rootFlags(cmd *cobra.Command) (projectRoot string, dryRun bool) {
	projectRoot, _ = cmd.Root().PersistentFlags().GetString("root")
	dryRun, _ = cmd.Root().PersistentFlags().GetBool("dry-run")
	return projectRoot, dryRun
}

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "build",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		Example: MsgBuildExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			projectRoot, dryRun := rootFlags(cmd)
			output, _ := cmd.Flags().GetString("output")
			format, _ := cmd.Flags().GetString("format")
			withSpecimen, _ := cmd.Flags().GetBool("with-specimen")

			log.Info().
				Str("root", projectRoot).
				Bool("dry_run", dryRun).
				Msg("Building stylesheet")

			result, err := build.Build(build.Options{
				ProjectRoot:  projectRoot,
				OutputPath:   output,
				Format:       format,
				WithSpecimen: withSpecimen,
				DryRun:       dryRun,
			})
			if err != nil {
				return fmt.Errorf(MsgErrBuild, err)
			}

			if result.DryRun {
				fmt.Println(MsgDryRunNotice)
			}
			fmt.Printf(MsgStylesheetWritten, result.StylesheetPath, result.Bytes, result.Format)
			if result.SpecimenPath != "" {
				fmt.Printf(MsgSpecimenWritten, result.SpecimenPath)
			}
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", MsgFlagOutput)
	cmd.Flags().StringP("format", "f", "", MsgFlagFormat)
	cmd.Flags().Bool("with-specimen", false, MsgFlagSpecimen)

	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			projectRoot, _ := rootFlags(cmd)

			result := check.Check(check.Options{ProjectRoot: projectRoot})

			renderer := style.NewTerminalRenderer()
			fmt.Println(renderer.RenderIssues(result.Issues))

			if !result.OK() {
				return fmt.Errorf(MsgErrCheck, len(result.Issues))
			}
			return nil
		},
	}
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inspect",
		Short:   MsgInspectShort,
		Long:    MsgInspectLong,
		Example: MsgInspectExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			projectRoot, _ := rootFlags(cmd)
			formatFlag, _ := cmd.Flags().GetString("format")

			format, err := ui.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			format = ui.Resolve(format, os.Stdout)

			result, err := inspect.Inspect(inspect.Options{ProjectRoot: projectRoot})
			if err != nil {
				return fmt.Errorf(MsgErrInspect, err)
			}

			if format == ui.FormatJSON {
				out, err := result.JSON()
				if err != nil {
					return err
				}
				fmt.Println(out)
				return nil
			}

			renderer := style.NewTerminalRenderer()
			scale, err := renderer.RenderScale(result.Compilation)
			if err != nil {
				return err
			}
			tokens, err := renderer.RenderTokens(result.Compilation)
			if err != nil {
				return err
			}
			styles, err := renderer.RenderStyles(result.Compilation)
			if err != nil {
				return err
			}

			fmt.Println(scale)
			fmt.Println()
			fmt.Println(tokens)
			fmt.Println()
			fmt.Println(styles)
			return nil
		},
	}

	cmd.Flags().String("format", "auto", MsgFlagUIFormat)

	return cmd
}

func newSpecimenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "specimen",
		Short:   MsgSpecimenShort,
		Long:    MsgSpecimenLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			projectRoot, dryRun := rootFlags(cmd)
			output, _ := cmd.Flags().GetString("output")
			preview, _ := cmd.Flags().GetBool("preview")
			width, _ := cmd.Flags().GetInt("width")

			result, err := specimen.Generate(specimen.Options{
				ProjectRoot: projectRoot,
				OutputPath:  output,
				Preview:     preview,
				PreviewWide: width,
				DryRun:      dryRun,
			})
			if err != nil {
				return fmt.Errorf(MsgErrSpecimen, err)
			}

			if preview {
				fmt.Print(result.Preview)
				return nil
			}
			if result.DryRun {
				fmt.Println(MsgDryRunNotice)
			}
			fmt.Printf(MsgSpecimenWritten, result.SpecimenPath)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", MsgFlagOutput)
	cmd.Flags().Bool("preview", false, MsgFlagPreview)
	cmd.Flags().Int("width", 0, MsgFlagWidth)

	return cmd
}

func newGenConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			projectRoot, _ := rootFlags(cmd)
			write, _ := cmd.Flags().GetBool("write")
			resolved, _ := cmd.Flags().GetBool("resolved")

			result, err := genconfig.GenConfig(genconfig.Options{
				ProjectRoot: projectRoot,
				Write:       write,
				Resolved:    resolved,
			})
			if err != nil {
				return err
			}

			if result.FileWritten != "" {
				fmt.Printf(MsgConfigWritten, result.FileWritten)
				return nil
			}
			fmt.Print(result.ConfigContent)
			return nil
		},
	}

	cmd.Flags().BoolP("write", "w", false, MsgFlagWrite)
	cmd.Flags().Bool("resolved", false, MsgFlagResolved)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("quire version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
