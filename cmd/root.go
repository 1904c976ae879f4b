// Package cmd provides the root command and CLI setup for lua-localizer.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ProfeJavix/lua-localizer/internal/adapter"
	"github.com/ProfeJavix/lua-localizer/internal/controller"
	"github.com/ProfeJavix/lua-localizer/internal/domain"
	m "github.com/ProfeJavix/lua-localizer/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var metaLocator adapter.MetaLocator
var documentFinder adapter.DocumentFinder
var catalogBuilder domain.CatalogBuilder
var localizer domain.Localizer
var workflow domain.Workflow
var ui controller.UI

// libraryPaths is a root-level flag listing user definition directories.
var libraryPaths []string

// metaDirFlag points straight at the built-in definitions, skipping discovery.
var metaDirFlag string

// extensionsDirs lists the editor extension install roots to search.
var extensionsDirs []string

var extensionIDFlag string

var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	companion, err := adapter.DefaultCompanion()
	cobra.CheckErr(err)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	metaLocator = adapter.NewMetaLocator(fsAdapter, companion)
	documentFinder = adapter.NewDocumentFinder(fsAdapter)
	catalogBuilder = domain.NewCatalogBuilder(fsAdapter, companion.DefinitionExtension, viper.GetInt(catalogParallelConfigKey))
	localizer = domain.NewLocalizer()
	workflow = domain.NewWorkflow(
		fsAdapter,
		metaLocator,
		documentFinder,
		catalogBuilder,
		localizer,
		ui,
		companion.DefinitionExtension,
	)
}

const sourcesHelp = `Definitions are collected from every directory listed in
lua.workspace.library (--library) and from the meta files bundled with the
Lua language server extension (sumneko.lua), found under --extensions-dir or
given directly with --meta-dir.`

const rootLongDescription = `lua-localizer rewrites calls to library globals such as table.insert into
short local aliases and keeps the alias declarations in a generated
"--#region Localizations" block at the top of each file.

` + sourcesHelp

const localizeLongDescription = `Localize the library functions called in the given Lua files or directories.

Directories are searched recursively for .lua files, honoring .gitignore.
Every referenced name that is not aliased yet is rewritten everywhere in the
file and declared in the localization block. Running the command again on an
unchanged file makes no further edits.

` + sourcesHelp

const catalogLongDescription = `List the library functions known to the localizer and their aliases.

` + sourcesHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "lua-localizer",
		Short:        "Localize Lua library globals",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&libraryPaths, libraryFlagName, "l", nil, "directory of Lua definition files (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(libraryFlagName), libraryConfigKey)

	cmd.PersistentFlags().StringVar(&metaDirFlag, metaDirFlagName, "", "built-in definitions directory (skips extension discovery)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(metaDirFlagName), metaDirConfigKey)

	cmd.PersistentFlags().StringArrayVar(&extensionsDirs, extensionsDirFlagName, nil, "editor extensions directory to search (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(extensionsDirFlagName), extensionsDirsConfigKey)

	cmd.PersistentFlags().StringVar(&extensionIDFlag, extensionIDFlagName, "", "identifier of the Lua language server extension")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(extensionIDFlagName), extensionIDConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// sourceArgs reads the catalog source settings after flags, env and config are merged.
func sourceArgs() domain.SourceArgs {
	return domain.SourceArgs{
		Library: parsePaths(viper.GetStringSlice(libraryConfigKey)),
		Locate: adapter.LocateOptions{
			MetaDir:        m.Path(viper.GetString(metaDirConfigKey)),
			ExtensionsDirs: parsePaths(viper.GetStringSlice(extensionsDirsConfigKey)),
			ExtensionID:    viper.GetString(extensionIDConfigKey),
		},
	}
}
