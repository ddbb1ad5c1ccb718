package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names shared by [RegisterFlags] and [parseFlags].
const (
	flagOutput      = "output"
	flagCredentials = "credentials"
	flagFacade      = "facade"
	flagGHTorrent   = "ghtorrent"
	flagTUI         = "tui"
	flagYes         = "yes"
	flagStrictWrite = "strict-write"
	flagLogLevel    = "log-level"
	flagLogFile     = "log-file"
	flagSettings    = "settings"
)

// RegisterFlags defines every settings flag on fs. Flags carry no defaults of
// their own so that an unset flag never hides an environment variable or a
// settings file value.
//
// Flags:
//
//	-o/--output        path of the generated augur.config.json
//	--credentials      credentials record (JSON or TOML)
//	--facade           ask for the Facade connection
//	--ghtorrent        ask for the GHTorrent connection
//	--tui              use the terminal UI for prompts
//	-y/--yes           overwrite an existing file without asking
//	--strict-write     fail the run when the file cannot be written
//	--log-level        diagnostic log level
//	--log-file         diagnostic log file (rotated)
//	-s/--settings      JSON settings file
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(flagOutput, "o", "", fmt.Sprintf("Output file (default %q) (Env: AUGUR_CONFIG_OUTPUT)", DefaultOutputPath))
	fs.String(flagCredentials, "", fmt.Sprintf("Credentials file, JSON or TOML (default %q) (Env: AUGUR_CONFIG_CREDENTIALS)", DefaultCredentialsPath))
	fs.Bool(flagFacade, false, "Configure Facade interactively (Env: AUGUR_CONFIG_FACADE)")
	fs.Bool(flagGHTorrent, false, "Configure GHTorrent interactively (Env: AUGUR_CONFIG_GHTORRENT)")
	fs.Bool(flagTUI, false, "Use the terminal UI for prompts (Env: AUGUR_CONFIG_TUI)")
	fs.BoolP(flagYes, "y", false, "Overwrite an existing output file without asking (Env: AUGUR_CONFIG_YES)")
	fs.Bool(flagStrictWrite, false, "Exit with an error when the output file cannot be written (Env: AUGUR_CONFIG_STRICT_WRITE)")
	fs.String(flagLogLevel, "", fmt.Sprintf("Log level: debug, info, warn, error (default %q) (Env: AUGUR_CONFIG_LOG_LEVEL)", DefaultLogLevel))
	fs.String(flagLogFile, "", "Write logs to this file instead of stderr (Env: AUGUR_CONFIG_LOG_FILE)")
	fs.StringP(flagSettings, "s", "", "JSON settings file (Env: AUGUR_CONFIG_SETTINGS)")
}

// parseFlags builds a partial [Settings] from the flags the operator
// actually set on fs. A nil fs yields empty settings.
func parseFlags(fs *pflag.FlagSet) (*Settings, error) {
	cfg := &Settings{}
	if fs == nil {
		return cfg, nil
	}

	stringFlags := map[string]*string{
		flagOutput:      &cfg.OutputPath,
		flagCredentials: &cfg.CredentialsPath,
		flagLogLevel:    &cfg.Log.Level,
		flagLogFile:     &cfg.Log.File,
		flagSettings:    &cfg.SettingsFile,
	}
	for name, dst := range stringFlags {
		if !fs.Changed(name) {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return nil, fmt.Errorf("error reading flag --%s: %w", name, err)
		}
		*dst = v
	}

	boolFlags := map[string]*bool{
		flagFacade:      &cfg.Prompts.Facade,
		flagGHTorrent:   &cfg.Prompts.GHTorrent,
		flagTUI:         &cfg.Prompts.TUI,
		flagYes:         &cfg.AssumeYes,
		flagStrictWrite: &cfg.StrictWrite,
	}
	for name, dst := range boolFlags {
		if !fs.Changed(name) {
			continue
		}
		v, err := fs.GetBool(name)
		if err != nil {
			return nil, fmt.Errorf("error reading flag --%s: %w", name, err)
		}
		*dst = v
	}

	return cfg, nil
}
