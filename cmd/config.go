package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ProfeJavix/lua-localizer/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "lua-localizer"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	libraryFlagName       = "library"
	metaDirFlagName       = "meta-dir"
	extensionsDirFlagName = "extensions-dir"
	extensionIDFlagName   = "extension-id"
	verboseFlagName       = "verbose"

	libraryConfigKey         = "lua.workspace.library"
	metaDirConfigKey         = "meta.dir"
	extensionsDirsConfigKey  = "meta.extensions_dirs"
	extensionIDConfigKey     = "meta.extension_id"
	catalogParallelConfigKey = "catalog.parallel"

	defaultExtensionID = "sumneko.lua"

	envPrefix = "LUA_LOCALIZER"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".lua-localizer.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// extensionInstallRoots are the places editors install their extensions, relative to the home directory.
var extensionInstallRoots = []string{
	".vscode/extensions",
	".vscode-server/extensions",
	".vscode-oss/extensions",
	".cursor/extensions",
}

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(libraryConfigKey, []string{})
	viper.SetDefault(metaDirConfigKey, "")
	viper.SetDefault(extensionsDirsConfigKey, defaultExtensionsDirs())
	viper.SetDefault(extensionIDConfigKey, defaultExtensionID)
	viper.SetDefault(catalogParallelConfigKey, domain.DefaultCatalogParallel)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	// A missing or unreadable config file leaves defaults, env and flags in charge.
	_ = viper.ReadInConfig()
}

func defaultExtensionsDirs() []string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return []string{}
	}

	dirs := make([]string, 0, len(extensionInstallRoots))
	for _, root := range extensionInstallRoots {
		dirs = append(dirs, filepath.Join(home, filepath.FromSlash(root)))
	}

	return dirs
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
