package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/arthofer/lineart/pkg/errors"
	"github.com/arthofer/lineart/pkg/pipeline"
)

// List styles.
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// galleryCommand creates the gallery command for browsing a collection.
func (c *CLI) galleryCommand() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "gallery [collection]",
		Short: "Browse a rendered collection interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			collection := pipeline.DefaultCollection
			if len(args) == 1 {
				collection = args[0]
			}
			if err := errors.ValidateCollection(collection); err != nil {
				return err
			}
			return runGallery(filepath.Join(outputDir, collection))
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", pipeline.DefaultOutputDir, "base output directory")
	return cmd
}

// runGallery lists the collection's PNGs and prints the selected path, so
// the result can be piped to an image viewer.
func runGallery(dir string) error {
	images, err := listImages(dir)
	if err != nil {
		return err
	}
	if len(images) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no images in %s (run 'lineart generate' first)", dir)
	}

	model := newImageListModel(dir, images)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("gallery: %w", err)
	}

	if m, ok := final.(imageListModel); ok && m.selected != "" {
		fmt.Println(filepath.Join(dir, m.selected))
	}
	return nil
}

// listImages returns the PNG file names in dir, sorted by name.
func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read collection %s", dir)
	}
	var images []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".png") {
			images = append(images, e.Name())
		}
	}
	sort.Strings(images)
	return images, nil
}

// imageListModel is the bubbletea model for image selection.
type imageListModel struct {
	dir      string
	images   []string
	cursor   int
	offset   int
	height   int
	selected string
}

func newImageListModel(dir string, images []string) imageListModel {
	return imageListModel{dir: dir, images: images, height: 15}
}

func (m imageListModel) Init() tea.Cmd {
	return nil
}

func (m imageListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.images)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			m.selected = m.images[m.cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m imageListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Gallery: %s", m.dir)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.images) {
		end = len(m.images)
	}
	for i := m.offset; i < end; i++ {
		line := "  " + m.images[i]
		if i == m.cursor {
			line = listSelectedStyle.Render("> " + m.images[i])
		} else {
			line = listNormalStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.images) > m.height {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render(fmt.Sprintf("%d/%d", m.cursor+1, len(m.images))))
	}
	return b.String()
}
