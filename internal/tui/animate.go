// Package tui plays back a precomputed oscillator solution in the terminal.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/physlab/internal/dynamo"
	"github.com/san-kum/physlab/internal/physics"
	"github.com/san-kum/physlab/internal/viz"
)

const (
	canvasWidth  = 60
	canvasHeight = 10
	chartWidth   = 50
	chartHeight  = 6
	barWidth     = 24
	frameRate    = 30
	minSpeed     = 0.25
	maxSpeed     = 16
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model steps through the rows of a solved trajectory one frame at a time.
type Model struct {
	osc      *physics.SpringOscillator
	times    []float64
	states   []dynamo.State
	energies physics.Energies

	cursor float64
	speed  float64
	paused bool
	done   bool

	amplitude float64
	maxEnergy float64
	canvas    *viz.Canvas
}

// NewModel prepares playback of states sampled at times.
func NewModel(osc *physics.SpringOscillator, times []float64, states []dynamo.State) Model {
	e := osc.EnergySeries(states)
	amp, peak := 0.0, 0.0
	for i, s := range states {
		amp = math.Max(amp, math.Abs(s[0]))
		peak = math.Max(peak, math.Max(e.Total[i], math.Max(e.Kinetic[i], e.Potential[i])))
	}
	if amp == 0 {
		amp = 1
	}
	if peak == 0 {
		peak = 1
	}
	return Model{
		osc:       osc,
		times:     times,
		states:    states,
		energies:  e,
		speed:     1,
		amplitude: amp,
		maxEnergy: peak,
		canvas:    viz.NewCanvas(canvasWidth, canvasHeight),
	}
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		case "r":
			m.cursor, m.done, m.paused = 0, false, false
		case "+", "=":
			m.speed = math.Min(m.speed*2, maxSpeed)
		case "-", "_":
			m.speed = math.Max(m.speed/2, minSpeed)
		}
		return m, nil
	case tickMsg:
		m.advance()
		return m, tick()
	}
	return m, nil
}

// advance moves the playhead forward by speed frames, stopping on the last row.
func (m *Model) advance() {
	if m.paused || m.done || len(m.states) == 0 {
		return
	}
	m.cursor += m.speed
	if last := float64(len(m.states) - 1); m.cursor >= last {
		m.cursor = last
		m.done = true
	}
}

// Frame is the index of the row currently shown.
func (m Model) Frame() int { return int(m.cursor) }

func (m Model) View() string {
	if len(m.states) == 0 {
		return "no data\n"
	}
	i := m.Frame()
	y := m.states[i]

	m.canvas.Clear()
	m.drawSpring(y[0])

	status := viz.StatusRunning.Render("● running")
	switch {
	case m.done:
		status = viz.Subtle.Render("■ finished")
	case m.paused:
		status = viz.StatusPaused.Render("○ paused")
	}

	var b strings.Builder
	b.WriteString(viz.HeaderStyle.Render("SPRING OSCILLATOR") + "\n")
	b.WriteString(fmt.Sprintf("%s  t=%.2fs  x%.2g\n\n", status, m.times[i], m.speed))
	b.WriteString(viz.Panel.Render(m.canvas.String()) + "\n")

	ke, pe, total := m.energies.Kinetic[i], m.energies.Potential[i], m.energies.Total[i]
	bars := lipgloss.JoinVertical(lipgloss.Left,
		viz.Metric("kinetic", fmt.Sprintf("%8.3f J ", ke))+viz.Bar(ke/m.maxEnergy, barWidth, viz.KineticBar),
		viz.Metric("potential", fmt.Sprintf("%8.3f J ", pe))+viz.Bar(pe/m.maxEnergy, barWidth, viz.PotentialBar),
		viz.Metric("total", fmt.Sprintf("%8.3f J ", total))+viz.Bar(total/m.maxEnergy, barWidth, viz.TotalBar),
	)
	b.WriteString(bars + "\n\n")

	if i > 0 {
		b.WriteString(viz.EnergyChart(m.energies.Slice(i+1), chartWidth, chartHeight) + "\n\n")
	}
	b.WriteString(viz.KeyHint.Render("space pause  r restart  +/- speed  q quit") + "\n")
	return b.String()
}

// drawSpring draws a wall, a zigzag spring and a block displaced by x.
func (m Model) drawSpring(x float64) {
	w, h := m.canvas.Width*2, m.canvas.Height*4
	cy := h / 2
	wallX := 2
	rest := w / 2
	block := 5

	m.canvas.DrawLine(wallX, 2, wallX, h-3)
	massX := rest + int(x/m.amplitude*float64(rest-wallX-2*block))

	const coils = 12
	dist := massX - block - wallX
	prevX, prevY := wallX, cy
	for k := 1; k <= coils; k++ {
		cx := wallX + k*dist/(coils+1)
		cyk := cy - 4
		if k%2 == 0 {
			cyk = cy + 4
		}
		m.canvas.DrawLine(prevX, prevY, cx, cyk)
		prevX, prevY = cx, cyk
	}
	m.canvas.DrawLine(prevX, prevY, massX-block, cy)
	m.canvas.FillRect(massX-block, cy-block, massX+block, cy+block)
}

// Run plays the animation until the user quits.
func Run(osc *physics.SpringOscillator, times []float64, states []dynamo.State) error {
	p := tea.NewProgram(NewModel(osc, times, states), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
