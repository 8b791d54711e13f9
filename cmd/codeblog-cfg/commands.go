package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/based-ghost/codeblog/internal/config"
	"github.com/based-ghost/codeblog/internal/logging"
	"github.com/based-ghost/codeblog/internal/siteconfig"
	"github.com/based-ghost/codeblog/internal/ui"
)

// Scopes accepted by show
const (
	scopeAll     = "all"
	scopeSite    = "site"
	scopeVendors = "vendors"
)

// outputFormat is the --format flag; empty means use preferences
var outputFormat string

// loadPreferences reads the preferences file, falling back to defaults
// when it cannot be read so that show still works.
func loadPreferences() *config.Preferences {
	prefs, err := config.Load()
	if err != nil {
		logging.Warn("Using default preferences", zap.Error(err))
		return config.NewPreferences()
	}
	logging.Debug("Preferences loaded",
		zap.String("format", prefs.Format),
		zap.Bool("color", prefs.Color),
	)
	return prefs
}

// resolveFormat picks the output format and applies color settings.
func resolveFormat() (string, error) {
	prefs := loadPreferences()

	if noColor || !prefs.Color || !ui.ColorEnabled() {
		ui.DisableColor()
	}

	format := outputFormat
	if format == "" {
		format = prefs.Format
	}
	if err := config.ValidateFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [site|vendors|all]",
		Short: "Show site configuration",
		Long: `Display the site identity, the vendor links, or both.

The output format comes from --format, or from the preferences file
when the flag is not given (see 'codeblog-cfg prefs').`,
		Example: `  # Both records, styled
  codeblog-cfg show

  # Vendor links only, one key=value per line
  codeblog-cfg show vendors --format compact

  # Machine-readable output
  codeblog-cfg show --format json
  codeblog-cfg show site --format yaml`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{scopeAll, scopeSite, scopeVendors},
		RunE:      runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	scope := scopeAll
	if len(args) > 0 {
		scope = strings.ToLower(args[0])
	}
	switch scope {
	case scopeAll, scopeSite, scopeVendors:
	default:
		return fmt.Errorf("unknown scope %q (valid: %s, %s, %s)", args[0], scopeAll, scopeSite, scopeVendors)
	}

	format, err := resolveFormat()
	if err != nil {
		return err
	}
	logging.Debug("Rendering configuration", zap.String("scope", scope), zap.String("format", format))

	out, err := render(scope, format, ui.GetTerminalWidth())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// render produces the output for a scope in a format.
func render(scope, format string, width int) (string, error) {
	site := siteconfig.GetSiteIdentity()
	vendors := siteconfig.GetVendorLinks()

	// Value to encode for machine formats
	var value any
	switch scope {
	case scopeSite:
		value = site
	case scopeVendors:
		value = vendors
	default:
		value = siteconfig.NewDocument()
	}

	switch format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data) + "\n", nil

	case config.FormatYAML:
		data, err := yaml.Marshal(value)
		if err != nil {
			return "", fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return string(data), nil

	case config.FormatCompact:
		switch scope {
		case scopeSite:
			return siteconfig.FormatIdentityCompact(site), nil
		case scopeVendors:
			return siteconfig.FormatVendorsCompact(vendors), nil
		}
		return siteconfig.FormatCompact(site, vendors), nil

	default:
		switch scope {
		case scopeSite:
			return siteconfig.FormatIdentity(site, width) + "\n", nil
		case scopeVendors:
			return siteconfig.FormatVendors(vendors, width) + "\n", nil
		}
		return siteconfig.FormatDetailed(site, vendors, width) + "\n", nil
	}
}

func newLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "link <name>",
		Short: "Print a single vendor URL",
		Long: `Print the homepage URL of one vendor.

The name is matched case-insensitively against the display name
(e.g. "React", "ASP.NET") or the field key (e.g. "reactUrl").`,
		Example: `  codeblog-cfg link react
  codeblog-cfg link typescriptUrl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vendors := siteconfig.GetVendorLinks()
			url, ok := vendors.Lookup(args[0])
			if !ok {
				names := make([]string, 0, 6)
				for _, l := range vendors.Links() {
					names = append(names, l.Name)
				}
				return fmt.Errorf("unknown vendor %q (known: %s)", args[0], strings.Join(names, ", "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that every configured value is well formed",
		Long: `Validate the site identity and vendor links.

Checks that the email is a mailto: URI with a valid address, that every
URL is an absolute https URL, and that title and subtitle are non-empty.
Exits non-zero when any check fails.`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	if noColor || !ui.ColorEnabled() {
		ui.DisableColor()
	}

	errs := siteconfig.ValidateAll()
	for _, err := range errs {
		field := ""
		if vErr, ok := err.(*siteconfig.ValidationError); ok {
			field = vErr.Field
		}
		logging.LogValidation(field, err)
	}

	if len(errs) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), ui.NewFailureResult(fmt.Sprintf("%d invalid field(s)", len(errs)), errs).Render())
		return fmt.Errorf("validation failed with %d error(s)", len(errs))
	}

	checked := []string{"email", "githubUrl", "title", "subtitle"}
	for _, l := range siteconfig.GetVendorLinks().Links() {
		checked = append(checked, l.Key)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.NewSuccessResult("All fields valid", checked).Render())
	return nil
}

func newPrefsCmd() *cobra.Command {
	prefsCmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change CLI preferences",
	}

	prefsCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			prefs, err := config.LoadFrom(path)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(prefs)
			if err != nil {
				return fmt.Errorf("failed to marshal preferences: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", path, data)
			return nil
		},
	})

	prefsCmd.AddCommand(&cobra.Command{
		Use:       "set-format <format>",
		Short:     "Set the default output format for show",
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.Formats,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ValidateFormat(args[0]); err != nil {
				return err
			}
			prefs, err := config.Load()
			if err != nil {
				return err
			}
			prefs.Format = args[0]
			if err := prefs.Save(); err != nil {
				return err
			}
			logging.Info("Preferences saved", zap.String("format", prefs.Format))
			fmt.Fprintf(cmd.OutOrStdout(), "Default format set to %s\n", prefs.Format)
			return nil
		},
	})

	prefsCmd.AddCommand(&cobra.Command{
		Use:       "set-color <on|off>",
		Short:     "Enable or disable colored output",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var color bool
			switch strings.ToLower(args[0]) {
			case "on", "true", "yes":
				color = true
			case "off", "false", "no":
				color = false
			default:
				return fmt.Errorf("expected on or off, got %q", args[0])
			}
			prefs, err := config.Load()
			if err != nil {
				return err
			}
			prefs.Color = color
			if err := prefs.Save(); err != nil {
				return err
			}
			logging.Info("Preferences saved", zap.Bool("color", prefs.Color))
			fmt.Fprintf(cmd.OutOrStdout(), "Color output %s\n", map[bool]string{true: "enabled", false: "disabled"}[color])
			return nil
		},
	})

	return prefsCmd
}
