package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Chittaranjans/Recruiter-board/internal/app"
	"github.com/Chittaranjans/Recruiter-board/internal/auth"
	"github.com/Chittaranjans/Recruiter-board/internal/interview"
	"github.com/Chittaranjans/Recruiter-board/internal/pipeline"
	"github.com/Chittaranjans/Recruiter-board/pkg/models"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse candidates interactively",
	Long:  "Walk the candidate list in an interactive loop: view details, interviews and move candidates between pipeline stages",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireCapability(auth.CapViewPipeline); err != nil {
			return err
		}
		return runBrowser(cmd.Context(), application)
	},
}

func runBrowser(ctx context.Context, application *app.App) error {
	reader := bufio.NewReader(os.Stdin)

	for {
		candidates, err := application.Backend.GetCandidates(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch candidates: %w", err)
		}
		if len(candidates) == 0 {
			fmt.Println("No candidates found. Add one with 'recruiterboard candidate add'")
			return nil
		}

		fmt.Println(titleStyle.Render("Candidate Browser"))
		fmt.Println("Press 'q' to quit, or enter a candidate number to view details")
		fmt.Println()

		for i, c := range candidates {
			fmt.Printf("%d. %s [%s]\n", i+1, c.Name, c.Status)
		}

		fmt.Print("\n> ")
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)

		if input == "q" || input == "Q" {
			return nil
		}

		num, err := strconv.Atoi(input)
		if err != nil || num < 1 || num > len(candidates) {
			fmt.Println("Invalid selection")
			continue
		}

		displayCandidateDetails(ctx, application, candidates[num-1], reader)
	}
}

func displayCandidateDetails(ctx context.Context, application *app.App, candidate models.Candidate, reader *bufio.Reader) {
	for {
		fmt.Println("\n" + strings.Repeat("=", 60))
		fmt.Println(titleStyle.Render(candidate.Name))
		fmt.Printf("%s %s\n", labelStyle.Render("Email:"), candidate.Email)
		fmt.Printf("%s %s\n", labelStyle.Render("Status:"), candidate.Status)
		fmt.Printf("%s %d\n", labelStyle.Render("Job:"), candidate.JobID)

		interviews, _ := application.Backend.GetInterviews(ctx)
		now := time.Now()
		for _, iv := range interviews {
			if iv.CandidateID != candidate.ID {
				continue
			}
			fmt.Printf("%s #%d with %s on %s (%s)\n",
				labelStyle.Render("Interview:"),
				iv.ID, iv.InterviewerName,
				iv.ScheduledDate.Format("Jan 2"),
				interview.DeriveStatus(iv, now))
		}

		fmt.Println("\nOptions:")
		fmt.Println("  [m] Move to another status")
		fmt.Println("  [b] Back to list")
		fmt.Print("\n> ")

		choice, _ := reader.ReadString('\n')
		choice = strings.TrimSpace(strings.ToLower(choice))

		switch choice {
		case "m":
			fmt.Println("\nStatuses:")
			for i, s := range pipeline.Statuses {
				fmt.Printf("  %d. %s\n", i+1, s)
			}
			fmt.Print("\n> ")
			pick, _ := reader.ReadString('\n')
			num, err := strconv.Atoi(strings.TrimSpace(pick))
			if err != nil || num < 1 || num > len(pipeline.Statuses) {
				fmt.Println("Invalid selection")
				continue
			}

			updated, err := pipeline.SetCandidateStatus(ctx, application.Backend, candidate, pipeline.Statuses[num-1], application.Session)
			if err != nil {
				if errors.Is(err, app.ErrForbidden) {
					fmt.Println("Your role cannot change pipeline status")
				} else {
					fmt.Printf("Error: %v\n", err)
				}
				continue
			}
			candidate = updated
			fmt.Printf("\n✓ Moved to %s\n", candidate.Status)
		case "b":
			return
		default:
			fmt.Println("Invalid option")
		}
	}
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
