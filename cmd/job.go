package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Chittaranjans/Recruiter-board/internal/auth"
	"github.com/Chittaranjans/Recruiter-board/internal/scraper"
	"github.com/Chittaranjans/Recruiter-board/pkg/models"
)

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Manage job postings",
}

var jobListCmd = &cobra.Command{
	Use:   "list",
	Short: "List job postings",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}

		jobs, err := application.Backend.GetJobs(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch jobs: %w", err)
		}
		if len(jobs) == 0 {
			fmt.Println(valueStyle.Render("No jobs yet. Add one with 'recruiterboard job add'."))
			return nil
		}

		fmt.Println(titleStyle.Render("Job Postings"))
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Title", "Department", "Type"})
		table.SetBorder(false)
		caser := cases.Title(language.English)
		for _, job := range jobs {
			table.Append([]string{
				strconv.Itoa(job.ID),
				job.Title,
				caser.String(job.Department),
				job.EmploymentType,
			})
		}
		table.Render()
		return nil
	},
}

var jobViewCmd = &cobra.Command{
	Use:   "view [id]",
	Short: "Show one job posting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid job ID: %s", args[0])
		}

		job, err := application.Backend.GetJob(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to fetch job: %w", err)
		}

		fmt.Println(titleStyle.Render(job.Title))
		fmt.Printf("%s %d\n", labelStyle.Render("ID:"), job.ID)
		fmt.Printf("%s %s\n", labelStyle.Render("Department:"), valueStyle.Render(job.Department))
		fmt.Printf("%s %s\n", labelStyle.Render("Type:"), valueStyle.Render(job.EmploymentType))
		if job.RequiredSkills != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Skills:"), valueStyle.Render(job.RequiredSkills))
		}
		if job.Description != "" {
			fmt.Printf("\n%s\n%s\n", labelStyle.Render("Description:"), valueStyle.Render(job.Description))
		}
		return nil
	},
}

var (
	jobTitle      string
	jobDepartment string
	jobDesc       string
	jobSkills     string
	jobType       string
)

var jobAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a job posting",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireCapability(auth.CapManageJobs); err != nil {
			return err
		}
		if jobTitle == "" {
			return fmt.Errorf("--title is required")
		}

		job, err := application.Backend.CreateJob(cmd.Context(), models.Job{
			Title:          jobTitle,
			Department:     jobDepartment,
			Description:    jobDesc,
			RequiredSkills: jobSkills,
			EmploymentType: jobType,
		})
		if err != nil {
			return fmt.Errorf("failed to create job: %w", err)
		}

		fmt.Println(titleStyle.Render("✓ Job created"))
		fmt.Printf("%s %d\n", labelStyle.Render("ID:"), job.ID)
		fmt.Printf("%s %s\n", labelStyle.Render("Title:"), valueStyle.Render(job.Title))
		return nil
	},
}

var jobImportCmd = &cobra.Command{
	Use:   "import [url]",
	Short: "Import a job posting from a URL",
	Long: `Import a job posting by scraping the page at the given URL with a headless
browser. The page title and description are extracted; edit the rest with
the flags or afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireCapability(auth.CapManageJobs); err != nil {
			return err
		}

		fmt.Println(valueStyle.Render("Fetching posting..."))
		posting, err := scraper.FetchPosting(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to scrape posting: %w", err)
		}
		if jobDepartment != "" {
			posting.Department = jobDepartment
		}
		if jobType != "" {
			posting.EmploymentType = jobType
		}

		job, err := application.Backend.CreateJob(cmd.Context(), *posting)
		if err != nil {
			return fmt.Errorf("failed to save job: %w", err)
		}

		fmt.Println(titleStyle.Render("✓ Job imported"))
		fmt.Printf("%s %d\n", labelStyle.Render("ID:"), job.ID)
		fmt.Printf("%s %s\n", labelStyle.Render("Title:"), valueStyle.Render(job.Title))
		return nil
	},
}

var jobDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a job posting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireCapability(auth.CapManageJobs); err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid job ID: %s", args[0])
		}

		if err := application.Backend.DeleteJob(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete job: %w", err)
		}
		fmt.Println(titleStyle.Render("✓ Job deleted"))
		return nil
	},
}

func init() {
	jobAddCmd.Flags().StringVar(&jobTitle, "title", "", "Job title")
	jobAddCmd.Flags().StringVar(&jobDepartment, "department", "", "Department")
	jobAddCmd.Flags().StringVar(&jobDesc, "description", "", "Job description")
	jobAddCmd.Flags().StringVar(&jobSkills, "skills", "", "Required skills, comma separated")
	jobAddCmd.Flags().StringVar(&jobType, "type", "full-time", "Employment type")
	jobImportCmd.Flags().StringVar(&jobDepartment, "department", "", "Department")
	jobImportCmd.Flags().StringVar(&jobType, "type", "full-time", "Employment type")

	jobCmd.AddCommand(jobListCmd)
	jobCmd.AddCommand(jobViewCmd)
	jobCmd.AddCommand(jobAddCmd)
	jobCmd.AddCommand(jobImportCmd)
	jobCmd.AddCommand(jobDeleteCmd)
	rootCmd.AddCommand(jobCmd)
}
