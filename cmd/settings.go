package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"studiobooks/pkg/models"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage branding, theme and invoice style",
}

var settingsBrandingCmd = &cobra.Command{
	Use:   "branding",
	Short: "Show or update the branding profile used on documents",
	Example: `  studiobooks settings branding --name "Saliya Weddings" \
    --phone "077-1234567" --email hello@saliya.lk \
    --bank "Commercial Bank" --account-name "Saliya Weddings" --account-no 8001234567`,
	RunE: runSettingsBranding,
}

var settingsStyleCmd = &cobra.Command{
	Use:   "style [variant]",
	Short: "Show or set the invoice style variant",
	Long:  `With no argument, prints the saved style. Variants: classic, modern, minimal, elegant, bold.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSettingsStyle,
}

var settingsThemeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or update the invoice color theme",
	RunE:  runSettingsTheme,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsBrandingCmd, settingsStyleCmd, settingsThemeCmd)

	settingsBrandingCmd.Flags().String("name", "", "Business name")
	settingsBrandingCmd.Flags().String("tagline", "", "Tagline")
	settingsBrandingCmd.Flags().String("logo", "", "Logo as a base64 data URI")
	settingsBrandingCmd.Flags().String("phone", "", "Phone number")
	settingsBrandingCmd.Flags().String("email", "", "Email address")
	settingsBrandingCmd.Flags().String("address", "", "Business address")
	settingsBrandingCmd.Flags().String("bank", "", "Bank name")
	settingsBrandingCmd.Flags().String("account-name", "", "Bank account name")
	settingsBrandingCmd.Flags().String("account-no", "", "Bank account number")
	settingsBrandingCmd.Flags().String("footer", "", "Footer note on documents")

	settingsThemeCmd.Flags().String("name", "", "Theme name")
	settingsThemeCmd.Flags().String("primary", "", "Primary color, e.g. #1f2937")
	settingsThemeCmd.Flags().String("accent", "", "Accent color")
	settingsThemeCmd.Flags().String("text", "", "Text color")
	settingsThemeCmd.Flags().String("background", "", "Background color")
}

// setIfGiven overwrites target when the flag carried a value.
func setIfGiven(value string, target *string) {
	if value != "" {
		*target = value
	}
}

func runSettingsBranding(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	branding, err := app.ledger.Settings.Branding()
	if err != nil {
		return err
	}
	previous := branding

	name, _ := cmd.Flags().GetString("name")
	tagline, _ := cmd.Flags().GetString("tagline")
	logo, _ := cmd.Flags().GetString("logo")
	phone, _ := cmd.Flags().GetString("phone")
	email, _ := cmd.Flags().GetString("email")
	address, _ := cmd.Flags().GetString("address")
	bank, _ := cmd.Flags().GetString("bank")
	accountName, _ := cmd.Flags().GetString("account-name")
	accountNo, _ := cmd.Flags().GetString("account-no")
	footer, _ := cmd.Flags().GetString("footer")

	setIfGiven(name, &branding.BusinessName)
	setIfGiven(tagline, &branding.Tagline)
	setIfGiven(logo, &branding.LogoDataURI)
	setIfGiven(phone, &branding.Phone)
	setIfGiven(email, &branding.Email)
	setIfGiven(address, &branding.Address)
	setIfGiven(bank, &branding.BankName)
	setIfGiven(accountName, &branding.AccountName)
	setIfGiven(accountNo, &branding.AccountNo)
	setIfGiven(footer, &branding.FooterNote)

	if branding != previous {
		if err := app.ledger.Settings.SaveBranding(branding); err != nil {
			return err
		}
	}
	return printJSON(branding)
}

func runSettingsStyle(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	if len(args) == 0 {
		style, err := app.ledger.Settings.StyleVariant()
		if err != nil {
			return err
		}
		fmt.Println(style)
		return nil
	}

	if !models.IsValidStyleVariant(args[0]) {
		return fmt.Errorf("unknown style %q (use classic, modern, minimal, elegant or bold)", args[0])
	}
	if err := app.ledger.Settings.SaveStyleVariant(args[0]); err != nil {
		return err
	}
	fmt.Println(args[0])
	return nil
}

func runSettingsTheme(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	theme, err := app.ledger.Settings.ColorTheme()
	if err != nil {
		return err
	}
	previous := theme

	name, _ := cmd.Flags().GetString("name")
	primary, _ := cmd.Flags().GetString("primary")
	accent, _ := cmd.Flags().GetString("accent")
	text, _ := cmd.Flags().GetString("text")
	background, _ := cmd.Flags().GetString("background")

	setIfGiven(name, &theme.Name)
	setIfGiven(primary, &theme.Primary)
	setIfGiven(accent, &theme.Accent)
	setIfGiven(text, &theme.Text)
	setIfGiven(background, &theme.Background)

	if theme != previous {
		if err := app.ledger.Settings.SaveColorTheme(theme); err != nil {
			return err
		}
	}
	return printJSON(theme)
}
