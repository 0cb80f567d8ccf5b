package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	announceTone   string
	emailTo        string
	emailSubject   string
	emailKeyPoints string
)

var assistantCmd = &cobra.Command{
	Use:     "assistant",
	Aliases: []string{"ai"},
	Short:   "Draft HR text with the configured language model",
	Long: `Draft announcements and emails, or summarise leave trends, with the
language model configured by 'hrcentral settings ai'.

When no model is configured or generation fails, a short notice is
printed instead.`,
}

var assistantAnnounceCmd = &cobra.Command{
	Use:   "announce [topic]",
	Short: "Draft a company announcement",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssistantAnnounce,
}

var assistantEmailCmd = &cobra.Command{
	Use:   "email",
	Short: "Draft an email to an employee",
	Args:  cobra.NoArgs,
	RunE:  runAssistantEmail,
}

var assistantTrendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Summarise the leave requests you can see",
	Args:  cobra.NoArgs,
	RunE:  runAssistantTrends,
}

func init() {
	assistantAnnounceCmd.Flags().StringVar(&announceTone, "tone", "professional", "tone of the announcement")

	assistantEmailCmd.Flags().StringVar(&emailTo, "to", "", "recipient name (required)")
	assistantEmailCmd.Flags().StringVar(&emailSubject, "subject", "", "email subject (required)")
	assistantEmailCmd.Flags().StringVar(&emailKeyPoints, "points", "", "key points to cover")

	assistantCmd.AddCommand(assistantAnnounceCmd)
	assistantCmd.AddCommand(assistantEmailCmd)
	assistantCmd.AddCommand(assistantTrendsCmd)
	rootCmd.AddCommand(assistantCmd)
}

func requireAssistant() error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}
	return nil
}

func runAssistantAnnounce(cmd *cobra.Command, args []string) error {
	if err := requireAssistant(); err != nil {
		return err
	}
	if _, _, err := sessionUser(); err != nil {
		return err
	}

	cmd.Println(assistantService.GenerateAnnouncement(cmd.Context(), args[0], announceTone))
	return nil
}

func runAssistantEmail(cmd *cobra.Command, _ []string) error {
	if err := requireAssistant(); err != nil {
		return err
	}
	if _, _, err := sessionUser(); err != nil {
		return err
	}
	if emailTo == "" || emailSubject == "" {
		return errors.New("--to and --subject are required")
	}

	cmd.Println(assistantService.DraftEmail(cmd.Context(), emailTo, emailSubject, emailKeyPoints))
	return nil
}

func runAssistantTrends(cmd *cobra.Command, _ []string) error {
	if err := requireAssistant(); err != nil {
		return err
	}
	store, user, err := sessionUser()
	if err != nil {
		return err
	}

	leaves, err := store.Leaves(user)
	if err != nil {
		return fmt.Errorf("failed to list leave requests: %w", err)
	}

	history := assistantService.LeaveHistory(leaves)
	cmd.Println(assistantService.AnalyzeLeaveTrends(cmd.Context(), history))
	return nil
}
