package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/marquee-cli/marquee/auth"
	"github.com/marquee-cli/marquee/color"
	"github.com/marquee-cli/marquee/icon"
	"github.com/marquee-cli/marquee/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd, authDeleteCmd, authStatusCmd)
}

// authCmd manages the catalog access token kept in the system keyring.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the catalog access token",
}

var authSetCmd = &cobra.Command{
	Use:   "set [token]",
	Short: "Store a catalog access token in the system keyring",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var token string
		if len(args) == 1 {
			token = args[0]
		} else {
			prompt := &survey.Password{
				Message: "Catalog token:",
				Help:    "Sent as the auth query parameter on every catalog lookup",
			}
			handleErr(survey.AskOne(prompt, &token))
		}

		token = strings.TrimSpace(token)
		if token == "" {
			handleErr(errors.New("token is empty"))
		}

		handleErr(auth.SetToken(token))
		fmt.Printf("%s token stored\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

var authDeleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove"},
	Short:   "Remove the stored catalog access token",
	Run: func(cmd *cobra.Command, args []string) {
		if err := auth.DeleteToken(); err != nil && !auth.IsMissing(err) {
			handleErr(err)
		}
		fmt.Printf("%s token removed\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether a catalog access token is stored",
	Run: func(cmd *cobra.Command, args []string) {
		_, err := auth.GetToken()
		switch {
		case err == nil:
			fmt.Printf("%s token stored\n", style.Fg(color.Green)(icon.Get(icon.Success)))
		case auth.IsMissing(err):
			fmt.Printf("%s no token, lookups are anonymous\n", style.Fg(color.Yellow)(icon.Get(icon.Fail)))
		default:
			handleErr(err)
		}
	},
}
