package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/haeunpark/studyplan/internal/cli/formatter"
	"github.com/haeunpark/studyplan/internal/service"
)

func newMaterialCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "material",
		Short: "Manage learning materials",
	}

	cmd.AddCommand(
		newMaterialAddBookCmd(app),
		newMaterialAddVideoCmd(app),
		newMaterialListCmd(app),
		newMaterialInspectCmd(app),
		newMaterialEditCmd(app),
		newMaterialProgressCmd(app),
		newMaterialRemoveCmd(app),
	)

	return cmd
}

func newMaterialAddBookCmd(app *App) *cobra.Command {
	var title, desc, color, start, end string
	var pages int
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add-book",
		Short: "Register a book to read across a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				in, err := runBookForm(app.Clock)
				if err != nil {
					return err
				}
				return createBook(app, *in)
			}

			startDate, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}
			endDate, err := time.Parse("2006-01-02", end)
			if err != nil {
				return fmt.Errorf("invalid end date %q: %w", end, err)
			}

			return createBook(app, service.CreateBookInput{
				Title:       title,
				Description: desc,
				Color:       color,
				TotalPages:  pages,
				StartDate:   startDate,
				EndDate:     endDate,
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Book title")
	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().StringVar(&color, "color", "", "Display color")
	cmd.Flags().IntVar(&pages, "pages", 0, "Total page count")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill the fields in a form")

	return cmd
}

func createBook(app *App, in service.CreateBookInput) error {
	m, err := app.Materials.CreateBook(context.Background(), in)
	if err != nil {
		return err
	}
	fmt.Printf("Registered book %s [%s], %d pages per day\n", m.Title, m.DisplayID(), m.PagesPerDay)
	return nil
}

func newMaterialAddVideoCmd(app *App) *cobra.Command {
	var title, desc, color, start, end, transcriptPath string

	cmd := &cobra.Command{
		Use:   "add-video",
		Short: "Register a video course from a pasted curriculum transcript",
		Long: `Register a video course. The curriculum transcript is read from the file
given with --transcript, or from stdin when the flag is omitted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}
			endDate, err := time.Parse("2006-01-02", end)
			if err != nil {
				return fmt.Errorf("invalid end date %q: %w", end, err)
			}

			transcript, err := readTranscript(transcriptPath)
			if err != nil {
				return err
			}

			m, err := app.Materials.CreateVideo(context.Background(), service.CreateVideoInput{
				Title:       title,
				Description: desc,
				Color:       color,
				Transcript:  transcript,
				StartDate:   startDate,
				EndDate:     endDate,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Registered course %s [%s]: %d sections, %d per day\n",
				m.Title, m.DisplayID(), len(m.Sections), m.SectionsPerDay)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Course title")
	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().StringVar(&color, "color", "", "Display color")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&transcriptPath, "transcript", "", "Curriculum transcript file (defaults to stdin)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func readTranscript(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading transcript from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading transcript file: %w", err)
	}
	return string(data), nil
}

func newMaterialListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			materials, err := app.Materials.List(context.Background())
			if err != nil {
				return err
			}
			if len(materials) == 0 {
				fmt.Println("No materials registered.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatMaterialList(materials))
			return nil
		},
	}
}

func newMaterialInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show material details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveMaterialID(ctx, app, args[0])
			if err != nil {
				return err
			}
			m, err := app.Materials.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatMaterialDetail(m, app.Clock))
			return nil
		},
	}
}

func newMaterialEditCmd(app *App) *cobra.Command {
	var title, desc, color, start, end string
	var pages int

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a material's fields; the daily rate is recomputed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveMaterialID(ctx, app, args[0])
			if err != nil {
				return err
			}
			m, err := app.Materials.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				m.Title = title
			}
			if cmd.Flags().Changed("desc") {
				m.Description = desc
			}
			if cmd.Flags().Changed("color") {
				m.Color = color
			}
			if cmd.Flags().Changed("pages") {
				m.TotalPages = pages
			}
			if cmd.Flags().Changed("start") {
				m.StartDate, err = time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
			}
			if cmd.Flags().Changed("end") {
				m.EndDate, err = time.Parse("2006-01-02", end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
			}

			updated, err := app.Materials.Update(ctx, m)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatMaterialDetail(updated, app.Clock))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&desc, "desc", "", "New description")
	cmd.Flags().StringVar(&color, "color", "", "New display color")
	cmd.Flags().IntVar(&pages, "pages", 0, "New total page count (books)")
	cmd.Flags().StringVar(&start, "start", "", "New start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "New end date (YYYY-MM-DD)")

	return cmd
}

func newMaterialProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress ID VALUE",
		Short: "Set last completed page (books) or completed section count (videos)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveMaterialID(ctx, app, args[0])
			if err != nil {
				return err
			}
			value, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid progress value %q: %w", args[1], err)
			}

			m, err := app.Materials.AdvanceProgress(ctx, id, value)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatMaterialDetail(m, app.Clock))
			return nil
		},
	}
}

func newMaterialRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveMaterialID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Materials.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed material %s\n", id[:8])
			return nil
		},
	}
}
