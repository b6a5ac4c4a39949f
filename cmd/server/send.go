package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/myasir/portfolio-api/internal/api/mapper"
	"github.com/myasir/portfolio-api/internal/api/sanitization"
	"github.com/myasir/portfolio-api/internal/api/validation"
	"github.com/myasir/portfolio-api/internal/models"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var errSendFailed = errors.New("test message was not delivered")

var sendTestCmd = &cobra.Command{
	Use:   "send-test",
	Short: "Send a test submission through the configured email backend",
	Long: `Run one contact submission through the same validation, sanitization and
delivery steps as POST /api/contact, using the configured backend.

Example:
  portfolio-api send-test --email you@example.com
  EMAIL_BACKEND=smtp portfolio-api send-test --email you@example.com --subject "SMTP check"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		subject, _ := cmd.Flags().GetString("subject")
		message, _ := cmd.Flags().GetString("message")

		submission := models.ContactSubmission{
			Name:    name,
			Email:   email,
			Subject: subject,
			Message: message,
		}
		if err := validateSubmission(submission); err != nil {
			return err
		}

		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer a.logger.Close()

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = fmt.Sprintf(" Sending test message via %s...", a.dispatcher.BackendName())
		s.Start()
		result := a.dispatcher.Dispatch(cmd.Context(), sanitization.SanitizeSubmission(submission))
		s.Stop()

		if !result.Success {
			fmt.Printf("✗ Delivery failed: %s\n", result.Message)
			return errSendFailed
		}

		fmt.Printf("✓ Test message sent via %s\n", a.dispatcher.BackendName())
		return nil
	},
}

// validateSubmission applies the contact form rules to CLI input.
func validateSubmission(s models.ContactSubmission) error {
	err := validation.New().Struct(mapper.SubmissionToContactRequest(s))
	if err == nil {
		return nil
	}

	errs := validation.FormatValidationError(err)
	if len(errs) == 0 {
		return err
	}
	problems := make([]string, 0, len(errs))
	for _, e := range errs {
		problems = append(problems, fmt.Sprintf("--%s (%s)", e.Field, e.Tag))
	}
	return fmt.Errorf("invalid submission: %s", strings.Join(problems, ", "))
}
