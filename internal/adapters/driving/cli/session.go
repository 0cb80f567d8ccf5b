package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hrcentral-cli/internal/core/domain"
)

// defaultAdminIdentifier is used by "login --admin" without an argument.
const defaultAdminIdentifier = "admin@hrcentral.com"

var loginAdmin bool

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Start a session",
	Long: `Start a session as an employee (by email) or as the administrator.

The session is saved and reused by later commands until 'hrcentral logout'.

Examples:
  hrcentral login sarah.c@hrcentral.com
  hrcentral login --admin`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

var (
	registerFirstName string
	registerLastName  string
	registerEmail     string
	registerPhone     string
	registerAddress   string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register as a new employee and log in",
	Long: `Create an employee record for yourself and start a session.

New records start as "Applicant / New Hire" in the Unassigned department
until an administrator updates them.`,
	Args: cobra.NoArgs,
	RunE: runRegister,
}

func init() {
	loginCmd.Flags().BoolVar(&loginAdmin, "admin", false, "log in as the administrator")

	registerCmd.Flags().StringVar(&registerFirstName, "first-name", "", "first name (required)")
	registerCmd.Flags().StringVar(&registerLastName, "last-name", "", "last name (required)")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "email address (required)")
	registerCmd.Flags().StringVar(&registerPhone, "phone", "", "phone number")
	registerCmd.Flags().StringVar(&registerAddress, "address", "", "postal address")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(registerCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	store, err := requireStore()
	if err != nil {
		return err
	}

	identifier := ""
	if len(args) == 1 {
		identifier = args[0]
	}

	role := domain.RoleEmployee
	if loginAdmin {
		role = domain.RoleAdmin
		if identifier == "" {
			identifier = defaultAdminIdentifier
		}
	}
	if identifier == "" {
		return errors.New("email is required (or use --admin)")
	}

	user, err := store.Login(cmd.Context(), identifier, role)
	if err := saved(cmd, err); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	cmd.Printf("Logged in as %s (%s)\n", user.Name, user.Role)
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	store, err := requireStore()
	if err != nil {
		return err
	}

	if store.CurrentUser() == nil {
		cmd.Println("Not logged in.")
		return nil
	}
	if err := saved(cmd, store.Logout(cmd.Context())); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	cmd.Println("Logged out.")
	return nil
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	_, user, err := sessionUser()
	if err != nil {
		return err
	}

	cmd.Printf("%s %s\n", theme.Label.Render("Name: "), user.Name)
	cmd.Printf("%s %s\n", theme.Label.Render("Email:"), user.Email)
	cmd.Printf("%s %s\n", theme.Label.Render("Role: "), user.Role)
	if !user.IsAdmin() {
		cmd.Printf("%s %s\n", theme.Label.Render("ID:   "), user.ID)
	}
	return nil
}

func runRegister(cmd *cobra.Command, _ []string) error {
	store, err := requireStore()
	if err != nil {
		return err
	}

	employee, err := store.RegisterEmployee(cmd.Context(), domain.Registration{
		FirstName: registerFirstName,
		LastName:  registerLastName,
		Email:     registerEmail,
		Phone:     registerPhone,
		Address:   registerAddress,
	})
	if err := saved(cmd, err); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	cmd.Printf("Registered %s (ID: %s) and logged in.\n", employee.FullName(), employee.ID)
	return nil
}
