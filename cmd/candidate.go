package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Chittaranjans/Recruiter-board/internal/app"
	"github.com/Chittaranjans/Recruiter-board/internal/auth"
	"github.com/Chittaranjans/Recruiter-board/internal/pipeline"
	"github.com/Chittaranjans/Recruiter-board/pkg/models"
)

var candidateCmd = &cobra.Command{
	Use:     "candidate",
	Aliases: []string{"cand"},
	Short:   "Manage candidates in the pipeline",
}

var candidateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List candidates",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}

		candidates, err := application.Backend.GetCandidates(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch candidates: %w", err)
		}

		// Candidate accounts only see their own record.
		visible := candidates[:0:0]
		for _, c := range candidates {
			if auth.CanViewCandidate(application.Session, c.ID) {
				visible = append(visible, c)
			}
		}
		if len(visible) == 0 {
			fmt.Println(valueStyle.Render("No candidates to show."))
			return nil
		}

		fmt.Println(titleStyle.Render("Candidates"))
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Name", "Email", "Status", "Job"})
		table.SetBorder(false)
		for _, c := range visible {
			table.Append([]string{
				strconv.Itoa(c.ID),
				c.Name,
				c.Email,
				c.Status,
				strconv.Itoa(c.JobID),
			})
		}
		table.Render()
		return nil
	},
}

var candidateViewCmd = &cobra.Command{
	Use:   "view [id]",
	Short: "Show one candidate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid candidate ID: %s", args[0])
		}
		if !auth.CanViewCandidate(application.Session, id) {
			return fmt.Errorf("candidate %d: %w", id, app.ErrForbidden)
		}

		candidate, err := application.Backend.GetCandidate(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to fetch candidate: %w", err)
		}

		fmt.Println(titleStyle.Render(candidate.Name))
		fmt.Printf("%s %d\n", labelStyle.Render("ID:"), candidate.ID)
		fmt.Printf("%s %s\n", labelStyle.Render("Email:"), valueStyle.Render(candidate.Email))
		fmt.Printf("%s %s\n", labelStyle.Render("Status:"), valueStyle.Render(candidate.Status))
		fmt.Printf("%s %d\n", labelStyle.Render("Job:"), candidate.JobID)
		if candidate.CVText != "" {
			fmt.Printf("\n%s\n%s\n", labelStyle.Render("CV:"), valueStyle.Render(candidate.CVText))
		}
		return nil
	},
}

var (
	candName  string
	candEmail string
	candCV    string
	candJobID int
)

var candidateAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a candidate to the pipeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireCapability(auth.CapManageCandidates); err != nil {
			return err
		}
		if candName == "" || candJobID == 0 {
			return fmt.Errorf("--name and --job are required")
		}

		candidate, err := application.Backend.CreateCandidate(cmd.Context(), models.Candidate{
			Name:   candName,
			Email:  candEmail,
			CVText: candCV,
			JobID:  candJobID,
		})
		if err != nil {
			return fmt.Errorf("failed to create candidate: %w", err)
		}

		fmt.Println(titleStyle.Render("✓ Candidate added"))
		fmt.Printf("%s %d\n", labelStyle.Render("ID:"), candidate.ID)
		fmt.Printf("%s %s\n", labelStyle.Render("Status:"), valueStyle.Render(candidate.Status))
		return nil
	},
}

var candidateStatusCmd = &cobra.Command{
	Use:   "status [id] [new-status]",
	Short: "Move a candidate to a new pipeline status",
	Long: `Move a candidate to a new pipeline status. Any of the six statuses can be
set directly; there is no forced ordering, so a rejected candidate can be
reopened. Valid statuses: ` + statusNames() + `.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid candidate ID: %s", args[0])
		}

		candidate, err := application.Backend.GetCandidate(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to fetch candidate: %w", err)
		}

		updated, err := pipeline.SetCandidateStatus(cmd.Context(), application.Backend, candidate, pipeline.Status(args[1]), application.Session)
		if err != nil {
			if errors.Is(err, app.ErrInvalidStatus) {
				return fmt.Errorf("unknown status %q (valid: %s)", args[1], statusNames())
			}
			return fmt.Errorf("failed to update status: %w", err)
		}

		fmt.Println(titleStyle.Render("✓ Status updated"))
		fmt.Printf("%s %s\n", labelStyle.Render("Candidate:"), valueStyle.Render(updated.Name))
		fmt.Printf("%s %s → %s\n", labelStyle.Render("Status:"), candidate.Status, updated.Status)
		return nil
	},
}

var candidateDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Remove a candidate and their interviews",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireCapability(auth.CapManageCandidates); err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid candidate ID: %s", args[0])
		}

		if err := application.Backend.DeleteCandidate(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete candidate: %w", err)
		}
		fmt.Println(titleStyle.Render("✓ Candidate deleted"))
		return nil
	},
}

func statusNames() string {
	out := ""
	for i, s := range pipeline.Statuses {
		if i > 0 {
			out += ", "
		}
		out += string(s)
	}
	return out
}

func init() {
	candidateAddCmd.Flags().StringVar(&candName, "name", "", "Candidate name")
	candidateAddCmd.Flags().StringVar(&candEmail, "email", "", "Candidate email")
	candidateAddCmd.Flags().StringVar(&candCV, "cv", "", "CV text")
	candidateAddCmd.Flags().IntVar(&candJobID, "job", 0, "Job ID the candidate applies to")

	candidateCmd.AddCommand(candidateListCmd)
	candidateCmd.AddCommand(candidateViewCmd)
	candidateCmd.AddCommand(candidateAddCmd)
	candidateCmd.AddCommand(candidateStatusCmd)
	candidateCmd.AddCommand(candidateDeleteCmd)
	rootCmd.AddCommand(candidateCmd)
}
