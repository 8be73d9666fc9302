package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Chittaranjans/Recruiter-board/internal/auth"
	"github.com/Chittaranjans/Recruiter-board/internal/interview"
	"github.com/Chittaranjans/Recruiter-board/internal/pipeline"
	"github.com/Chittaranjans/Recruiter-board/pkg/models"
)

var interviewCmd = &cobra.Command{
	Use:     "interview",
	Aliases: []string{"iv"},
	Short:   "Manage interviews and their feedback",
}

var interviewListCmd = &cobra.Command{
	Use:   "list",
	Short: "List interviews",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}

		interviews, err := application.Backend.GetInterviews(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch interviews: %w", err)
		}
		if len(interviews) == 0 {
			fmt.Println(valueStyle.Render("No interviews scheduled."))
			return nil
		}

		now := time.Now()
		fmt.Println(titleStyle.Render("Interviews"))
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Candidate", "Interviewer", "Scheduled", "Status"})
		table.SetBorder(false)
		for _, iv := range interviews {
			table.Append([]string{
				strconv.Itoa(iv.ID),
				strconv.Itoa(iv.CandidateID),
				iv.InterviewerName,
				iv.ScheduledDate.Format("Jan 2, 2006 15:04"),
				string(interview.DeriveStatus(iv, now)),
			})
		}
		table.Render()
		return nil
	},
}

var interviewViewCmd = &cobra.Command{
	Use:   "view [id]",
	Short: "Show one interview and its feedback",
	Args:  cobra.ExactArgs(1),
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

		now := time.Now()
		fmt.Println(titleStyle.Render(fmt.Sprintf("Interview #%d", iv.ID)))
		fmt.Printf("%s %d\n", labelStyle.Render("Candidate:"), iv.CandidateID)
		fmt.Printf("%s %s\n", labelStyle.Render("Interviewer:"), valueStyle.Render(iv.InterviewerName))
		fmt.Printf("%s %s\n", labelStyle.Render("Scheduled:"), iv.ScheduledDate.Format("Jan 2, 2006 15:04"))
		fmt.Printf("%s %d minutes\n", labelStyle.Render("Duration:"), iv.DurationMinutes)
		fmt.Printf("%s %s\n", labelStyle.Render("Status:"), valueStyle.Render(string(interview.DeriveStatus(iv, now))))
		if days := interview.DaysOverdue(iv.Interview, now); iv.Feedback == nil && days > 0 {
			fmt.Printf("%s %d days\n", labelStyle.Render("Overdue:"), days)
		}

		if iv.Feedback != nil {
			fb := iv.Feedback
			fmt.Println(labelStyle.Render("\nFeedback:"))
			fmt.Printf("%s %d/5\n", labelStyle.Render("Rating:"), fb.Rating)
			fmt.Printf("%s %s\n", labelStyle.Render("Recommendation:"), valueStyle.Render(fb.Recommendation))
			if fb.Strengths != "" {
				fmt.Printf("%s %s\n", labelStyle.Render("Strengths:"), valueStyle.Render(fb.Strengths))
			}
			if fb.Weaknesses != "" {
				fmt.Printf("%s %s\n", labelStyle.Render("Weaknesses:"), valueStyle.Render(fb.Weaknesses))
			}
			if fb.Comments != "" {
				fmt.Printf("%s %s\n", labelStyle.Render("Comments:"), valueStyle.Render(fb.Comments))
			}
		} else if interview.CanSubmitFeedback(application.Session, iv, now) {
			fmt.Println(valueStyle.Render("\nFeedback is due. Submit it with 'recruiterboard feedback submit'."))
		}
		return nil
	},
}

var (
	ivCandidateID int
	ivJobID       int
	ivInterviewer string
	ivDate        string
	ivDuration    int
	ivKeepStatus  bool
)

var interviewScheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Schedule an interview for a candidate",
	Long: `Schedule an interview. By default the candidate is also moved to the
"Interview Scheduled" pipeline status; pass --keep-status to leave the
pipeline untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireCapability(auth.CapScheduleInterviews); err != nil {
			return err
		}
		if ivCandidateID == 0 || ivInterviewer == "" || ivDate == "" {
			return fmt.Errorf("--candidate, --interviewer and --date are required")
		}

		scheduled, err := time.ParseInLocation("2006-01-02 15:04", ivDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD HH:MM)", ivDate)
		}

		candidate, err := application.Backend.GetCandidate(cmd.Context(), ivCandidateID)
		if err != nil {
			return fmt.Errorf("failed to fetch candidate: %w", err)
		}
		jobID := ivJobID
		if jobID == 0 {
			jobID = candidate.JobID
		}

		iv, err := application.Backend.CreateInterview(cmd.Context(), models.Interview{
			CandidateID:     candidate.ID,
			JobID:           jobID,
			InterviewerName: ivInterviewer,
			ScheduledDate:   scheduled,
			DurationMinutes: ivDuration,
		})
		if err != nil {
			return fmt.Errorf("failed to schedule interview: %w", err)
		}

		fmt.Println(titleStyle.Render("✓ Interview scheduled"))
		fmt.Printf("%s %d\n", labelStyle.Render("ID:"), iv.ID)
		fmt.Printf("%s %s\n", labelStyle.Render("When:"), iv.ScheduledDate.Format("Jan 2, 2006 15:04"))

		if !ivKeepStatus && candidate.Status != string(pipeline.StatusInterviewScheduled) {
			updated, err := pipeline.SetCandidateStatus(cmd.Context(), application.Backend, candidate, pipeline.StatusInterviewScheduled, application.Session)
			if err != nil {
				// The interview exists either way; only the pipeline nudge failed.
				fmt.Printf("%s %v\n", labelStyle.Render("Note:"), err)
				return nil
			}
			fmt.Printf("%s %s → %s\n", labelStyle.Render("Pipeline:"), candidate.Status, updated.Status)
		}
		return nil
	},
}

var interviewPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List interviews awaiting feedback",
	Long: `List past interviews that still have no feedback. Interviewers see their
own interviews; recruiters and admins see everyone's.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}

		interviews, err := application.Backend.GetInterviews(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch interviews: %w", err)
		}

		now := time.Now()
		seeAll := auth.HasCapability(application.Session, auth.CapSubmitAnyFeedback)
		var pending []models.InterviewWithFeedback
		for _, iv := range interviews {
			if !interview.Overdue(iv, now) {
				continue
			}
			if !seeAll && !ownInterview(application.Session, iv) {
				continue
			}
			pending = append(pending, iv)
		}
		if len(pending) == 0 {
			fmt.Println(valueStyle.Render("Nothing pending. All feedback is in."))
			return nil
		}

		fmt.Println(titleStyle.Render("Pending Feedback"))
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Candidate", "Interviewer", "Was Scheduled", "Days Overdue"})
		table.SetBorder(false)
		for _, iv := range pending {
			table.Append([]string{
				strconv.Itoa(iv.ID),
				strconv.Itoa(iv.CandidateID),
				iv.InterviewerName,
				iv.ScheduledDate.Format("Jan 2, 2006 15:04"),
				strconv.Itoa(interview.DaysOverdue(iv.Interview, now)),
			})
		}
		table.Render()
		return nil
	},
}

// ownInterview matches an interview to the session either by the linked
// account or by the recorded interviewer name.
func ownInterview(s auth.Session, iv models.InterviewWithFeedback) bool {
	if iv.InterviewerUserID != 0 && iv.InterviewerUserID == s.UserID {
		return true
	}
	return iv.InterviewerName == s.Username
}

func init() {
	interviewScheduleCmd.Flags().IntVar(&ivCandidateID, "candidate", 0, "Candidate ID")
	interviewScheduleCmd.Flags().IntVar(&ivJobID, "job", 0, "Job ID (defaults to the candidate's job)")
	interviewScheduleCmd.Flags().StringVar(&ivInterviewer, "interviewer", "", "Interviewer name")
	interviewScheduleCmd.Flags().StringVar(&ivDate, "date", "", "Scheduled date and time (YYYY-MM-DD HH:MM)")
	interviewScheduleCmd.Flags().IntVar(&ivDuration, "duration", 60, "Duration in minutes")
	interviewScheduleCmd.Flags().BoolVar(&ivKeepStatus, "keep-status", false, "Do not move the candidate to Interview Scheduled")

	interviewCmd.AddCommand(interviewListCmd)
	interviewCmd.AddCommand(interviewViewCmd)
	interviewCmd.AddCommand(interviewScheduleCmd)
	interviewCmd.AddCommand(interviewPendingCmd)
	rootCmd.AddCommand(interviewCmd)
}
