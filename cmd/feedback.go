package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Chittaranjans/Recruiter-board/internal/app"
	"github.com/Chittaranjans/Recruiter-board/internal/interview"
	"github.com/Chittaranjans/Recruiter-board/pkg/models"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Submit interview feedback",
}

var (
	fbRating         int
	fbRecommendation string
	fbComments       string
	fbStrengths      string
	fbWeaknesses     string
)

var feedbackSubmitCmd = &cobra.Command{
	Use:   "submit [interview-id]",
	Short: "Submit feedback for a completed interview",
	Long: `Submit feedback for an interview that has taken place. Each interview takes
exactly one feedback record; submitting marks the interview completed.
Recommendation must be one of: ` + strings.Join(interview.Recommendations, ", ") + `.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid interview ID: %s", args[0])
		}

		iv, err := application.Backend.GetInterview(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to fetch interview: %w", err)
		}

		updated, err := interview.SubmitFeedback(cmd.Context(), application.Backend, iv, models.Feedback{
			InterviewID:    iv.ID,
			Rating:         fbRating,
			Recommendation: fbRecommendation,
			Comments:       fbComments,
			Strengths:      fbStrengths,
			Weaknesses:     fbWeaknesses,
		}, application.Session, time.Now())
		if err != nil {
			if errors.Is(err, app.ErrAlreadySubmitted) {
				return fmt.Errorf("interview %d already has feedback", iv.ID)
			}
			return fmt.Errorf("failed to submit feedback: %w", err)
		}

		fmt.Println(titleStyle.Render("✓ Feedback submitted"))
		fmt.Printf("%s %d/5\n", labelStyle.Render("Rating:"), updated.Feedback.Rating)
		fmt.Printf("%s %s\n", labelStyle.Render("Recommendation:"), valueStyle.Render(updated.Feedback.Recommendation))
		return nil
	},
}

func init() {
	feedbackSubmitCmd.Flags().IntVar(&fbRating, "rating", 0, "Rating from 1 to 5")
	feedbackSubmitCmd.Flags().StringVar(&fbRecommendation, "recommendation", "", "Hire, Reject or Another Interview")
	feedbackSubmitCmd.Flags().StringVar(&fbComments, "comments", "", "General comments")
	feedbackSubmitCmd.Flags().StringVar(&fbStrengths, "strengths", "", "Candidate strengths")
	feedbackSubmitCmd.Flags().StringVar(&fbWeaknesses, "weaknesses", "", "Candidate weaknesses")

	feedbackCmd.AddCommand(feedbackSubmitCmd)
	rootCmd.AddCommand(feedbackCmd)
}
