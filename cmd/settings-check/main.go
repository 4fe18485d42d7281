package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/login-checker/internal/database"
	"github.com/eugenenazirov/login-checker/internal/email"
	"github.com/eugenenazirov/login-checker/internal/logging"
	"github.com/eugenenazirov/login-checker/internal/settings"
)

// report is the printable view of one resolution run.
type report struct {
	Settings        settings.Settings `json:"settings" yaml:"settings"`
	DatabaseAddr    string            `json:"database_addr" yaml:"database_addr"`
	DatabaseURL     string            `json:"database_url" yaml:"database_url"`
	EmailFrom       string            `json:"email_from" yaml:"email_from"`
	EmailRecipients []string          `json:"email_recipients" yaml:"email_recipients"`
}

func main() {
	kingpinApp := kingpin.New("settings-check", "Resolves the settings blob from the environment and reports the derived configuration")
	format := kingpinApp.Flag("format", "Output format: text, json or yaml").Default("text").Enum("text", "json", "yaml")
	showSecrets := kingpinApp.Flag("show-secrets", "Print credential fields instead of masking them").Bool()
	logLevel := kingpinApp.Flag("log-level", "Log verbosity: debug, info, warn or error").Default("info").String()

	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	logger, err := logging.New(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	resolved, err := settings.NewResolver().Resolve()
	if err != nil {
		logger.Fatal("failed to resolve settings", zap.Error(err))
	}
	logger.Debug("settings resolved", zap.String("env_var", settings.EnvVar))

	if err := render(os.Stdout, resolved, *format, *showSecrets); err != nil {
		logger.Fatal("failed to render report", zap.Error(err))
	}
}

// render writes the derived configuration to w. Credentials are masked unless
// showSecrets is set; the masked values also flow into the rendered DSN.
func render(w io.Writer, resolved settings.Settings, format string, showSecrets bool) error {
	view := resolved
	if !showSecrets {
		view = resolved.Redacted()
	}
	rep := buildReport(view)

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		return renderText(w, rep)
	}
}

func buildReport(s settings.Settings) report {
	dbConfig := database.NewConfig(s)
	sender := email.NewSender(s)

	recipients := email.Recipients(s)
	addresses := make([]string, len(recipients))
	for i, r := range recipients {
		addresses[i] = r.Address
	}

	return report{
		Settings:        s,
		DatabaseAddr:    dbConfig.Addr(),
		DatabaseURL:     dbConfig.URL().String(),
		EmailFrom:       fmt.Sprintf("%s <%s>", sender.Name, sender.Address),
		EmailRecipients: addresses,
	}
}

func renderText(w io.Writer, rep report) error {
	if _, err := fmt.Fprintf(w, "database address: %s\n", rep.DatabaseAddr); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "database url:     %s\n", rep.DatabaseURL); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "email from:       %s\n", rep.EmailFrom); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "email recipients: %d\n", len(rep.EmailRecipients)); err != nil {
		return err
	}
	for _, addr := range rep.EmailRecipients {
		if _, err := fmt.Fprintf(w, "  - %q\n", addr); err != nil {
			return err
		}
	}
	return nil
}
