package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loadProjects fetches all projects, name ascending
func (m RootModel) loadProjects() tea.Cmd {
	database := m.app.DB
	return func() tea.Msg {
		projects, err := database.Projects()
		return ProjectsLoadedMsg{Projects: projects, Err: err}
	}
}

func (m RootModel) handleProjectsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.projCursor > 0 {
			m.projCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.projCursor < len(m.projects)-1 {
			m.projCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.projectInput = projectInputAdd
		m.projInput.SetValue("")
		m.projInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Rename):
		if m.projCursor >= len(m.projects) {
			return m, nil
		}
		m.projectInput = projectInputRename
		m.renameID = m.projects[m.projCursor].ID
		m.projInput.SetValue(m.projects[m.projCursor].Name)
		m.projInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Recolor):
		if m.projCursor >= len(m.projects) {
			return m, nil
		}
		p := m.projects[m.projCursor]
		if err := m.app.DB.UpdateProject(p.ID, p.Name, nextPaletteColor(p.Color)); err != nil {
			rootDebugf("failed to recolor project: %v", err)
			m.errorMsg = "could not change project color"
			return m, nil
		}
		return m, m.loadProjects()

	case key.Matches(msg, m.keys.Delete):
		if m.projCursor >= len(m.projects) {
			return m, nil
		}
		// Entries keep existing; they just lose the association
		if err := m.app.DB.DeleteProject(m.projects[m.projCursor].ID); err != nil {
			rootDebugf("failed to delete project: %v", err)
			m.errorMsg = "could not delete project"
			return m, nil
		}
		m.statusMsg = "project deleted, its entries kept"
		return m, m.loadProjects()
	}

	return m, nil
}

// nextPaletteColor advances to the next palette entry, or the first when the
// current color is not from the palette
func nextPaletteColor(current string) string {
	for i, c := range projectPalette {
		if c == current {
			return projectPalette[(i+1)%len(projectPalette)]
		}
	}
	return projectPalette[0]
}

// handleProjectInputKey drives the add/rename input mode
func (m RootModel) handleProjectInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.projectInput = projectInputNone
		m.projInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		name := strings.TrimSpace(m.projInput.Value())
		mode := m.projectInput
		m.projectInput = projectInputNone
		m.projInput.Blur()

		if name == "" {
			m.statusMsg = "project name cannot be empty"
			return m, nil
		}

		switch mode {
		case projectInputAdd:
			color := projectPalette[len(m.projects)%len(projectPalette)]
			if _, err := m.app.DB.CreateProject(name, color); err != nil {
				rootDebugf("failed to create project: %v", err)
				m.errorMsg = "could not create project"
				return m, nil
			}
		case projectInputRename:
			if p := m.projectByID(m.renameID); p != nil {
				if err := m.app.DB.UpdateProject(p.ID, name, p.Color); err != nil {
					rootDebugf("failed to rename project: %v", err)
					m.errorMsg = "could not rename project"
					return m, nil
				}
			}
		}
		return m, m.loadProjects()
	}

	var cmd tea.Cmd
	m.projInput, cmd = m.projInput.Update(msg)
	return m, cmd
}

// renderProjects renders the project management view
func (m RootModel) renderProjects() string {
	var b []string
	b = append(b, m.styles.DayHeader.Render("Projects"))

	if m.projectInput != projectInputNone {
		label := "New project: "
		if m.projectInput == projectInputRename {
			label = "Rename: "
		}
		b = append(b, "  "+label+m.projInput.View())
		b = append(b, m.styles.Dim.Render("  enter to confirm, esc to cancel"))
		return strings.Join(b, "\n")
	}

	if len(m.projects) == 0 {
		b = append(b, m.styles.Dim.Render("  No projects yet. Press a to add one."))
		return strings.Join(b, "\n")
	}

	for i, p := range m.projects {
		line := "  " + ColorDot(p.Color) + " " + p.Name
		if i == m.projCursor {
			line = m.styles.Selected.Render(line)
		}
		b = append(b, line)
	}
	b = append(b, "")
	b = append(b, m.styles.Dim.Render("  a add · r rename · c color · d delete"))
	return strings.Join(b, "\n")
}
