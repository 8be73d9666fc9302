package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Chittaranjans/Recruiter-board/internal/auth"
	"github.com/Chittaranjans/Recruiter-board/internal/interview"
	"github.com/Chittaranjans/Recruiter-board/internal/pipeline"
	"github.com/Chittaranjans/Recruiter-board/pkg/models"
)

type pipelineStats struct {
	Total           int
	ByStatus        map[pipeline.Status]int
	Upcoming        int
	PendingFeedback int
	Completed       int
	AvgRating       float64
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "View pipeline statistics",
	Long:  "Display candidate counts per pipeline stage, interview progress and feedback ratings",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireCapability(auth.CapViewPipeline); err != nil {
			return err
		}

		candidates, err := application.Backend.GetCandidates(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch candidates: %w", err)
		}
		interviews, err := application.Backend.GetInterviews(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch interviews: %w", err)
		}

		stats := calculateStats(candidates, interviews, time.Now())

		fmt.Println(titleStyle.Render("Pipeline Statistics"))

		fmt.Printf("\n%s\n", labelStyle.Render("Candidates"))
		fmt.Printf("  Total: %d\n", stats.Total)
		for _, status := range pipeline.Statuses {
			count := stats.ByStatus[status]
			if stats.Total > 0 {
				fmt.Printf("  %s: %d (%.1f%%)\n", status, count, float64(count)/float64(stats.Total)*100)
			} else {
				fmt.Printf("  %s: %d\n", status, count)
			}
		}

		fmt.Printf("\n%s\n", labelStyle.Render("Interviews"))
		fmt.Printf("  Upcoming: %d\n", stats.Upcoming)
		fmt.Printf("  Pending Feedback: %d\n", stats.PendingFeedback)
		fmt.Printf("  Completed: %d\n", stats.Completed)
		if stats.AvgRating > 0 {
			fmt.Printf("  Average Rating: %.1f/5\n", stats.AvgRating)
		}
		return nil
	},
}

func calculateStats(candidates []models.Candidate, interviews []models.InterviewWithFeedback, now time.Time) pipelineStats {
	stats := pipelineStats{
		Total:    len(candidates),
		ByStatus: make(map[pipeline.Status]int),
	}
	for _, c := range candidates {
		stats.ByStatus[pipeline.Status(c.Status)]++
	}

	ratingSum, rated := 0, 0
	for _, iv := range interviews {
		switch interview.DeriveStatus(iv, now) {
		case interview.StatusUpcoming:
			stats.Upcoming++
		case interview.StatusPendingFeedback:
			stats.PendingFeedback++
		case interview.StatusCompleted:
			stats.Completed++
		}
		if iv.Feedback != nil {
			ratingSum += iv.Feedback.Rating
			rated++
		}
	}
	if rated > 0 {
		stats.AvgRating = float64(ratingSum) / float64(rated)
	}
	return stats
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
