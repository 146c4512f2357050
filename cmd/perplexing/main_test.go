package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/perplexing/config"
	"github.com/katalvlaran/perplexing/curve"
	"github.com/katalvlaran/perplexing/puzzle"
	"github.com/katalvlaran/perplexing/tube"
	"github.com/katalvlaran/perplexing/wire"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// run executes the CLI with a non-existent config file, so defaults apply.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))

	err := cmd.Execute()
	return out.String(), err
}

// solution generates the puzzle the CLI draws for seed and returns its
// solution as a "cut" command.
func solution(t *testing.T, seed int64) (*puzzle.Puzzle, string) {
	t.Helper()

	g, err := puzzle.NewGenerator(config.DefaultConfig().StaticEdgework(), puzzle.WithSeed(seed))
	require.NoError(t, err)
	p, err := g.Generate()
	require.NoError(t, err)

	var b strings.Builder
	b.WriteString("cut")
	for _, n := range p.Solution() {
		fmt.Fprintf(&b, " %d", n)
	}
	return p, b.String()
}

// TestGenerate_Reveal verifies that --reveal adds the per-wire breakdown and
// the solution, and that both stay hidden without it.
func TestGenerate_Reveal(t *testing.T) {
	out, err := run(t, "", "generate", "--seed", "5", "--reveal")
	require.NoError(t, err)
	require.Contains(t, out, "wire 1: ")
	require.Contains(t, out, "wire 6: ")
	require.Contains(t, out, "solution: ")

	plain, err := run(t, "", "generate", "--seed", "5")
	require.NoError(t, err)
	require.NotContains(t, plain, "solution")
}

func TestGenerate_SameSeedSameLayout(t *testing.T) {
	a, err := run(t, "", "generate", "--seed", "12", "--reveal")
	require.NoError(t, err)
	b, err := run(t, "", "generate", "--seed", "12", "--reveal")
	require.NoError(t, err)

	// the first line carries the random module id
	skipID := func(s string) string { return s[strings.Index(s, "\n")+1:] }
	require.Equal(t, skipID(a), skipID(b))
}

// TestPlay_Solve verifies that cutting the solution from arguments solves
// the module without strikes.
func TestPlay_Solve(t *testing.T) {
	_, cut := solution(t, 21)
	out, err := run(t, "", "play", "--seed", "21", cut)
	require.NoError(t, err)
	require.Contains(t, out, "module solved")
	require.Contains(t, out, "solved: true strikes: 0")
	require.NotContains(t, out, "STRIKE")
}

func TestPlay_StdinStrikeAndColorblind(t *testing.T) {
	var (
		p     *puzzle.Puzzle
		seed  int64
		wrong int
	)
	for seed = 8; wrong == 0; seed++ {
		p, _ = solution(t, seed)
		for i, w := range p.Wires {
			if w.Requirement == puzzle.DontCut {
				wrong = i + 1
				break
			}
		}
	}
	seed--

	out, err := run(t, fmt.Sprintf("cb\ncut 9\ncut %d\n", wrong), "play", "--seed", fmt.Sprint(seed))
	require.NoError(t, err)
	require.Contains(t, out, "colorblind mode on")
	require.Contains(t, out, fmt.Sprintf("wire 1: %s", p.Wires[0].Color))
	require.Contains(t, out, "error: ")
	require.Contains(t, out, fmt.Sprintf("STRIKE on wire %d", wrong))
	require.Contains(t, out, "strikes: 1")
}

// TestMesh_WritesOBJ verifies that the mesh command writes an OBJ file to
// --out.
func TestMesh_WritesOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wire.obj")
	_, err := run(t, "", "mesh", "--seed", "3", "--wire", "2", "--piece", "cut", "--fidelity", "collider", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "v "))
	require.Contains(t, string(data), "\nf ")
}

// TestMesh_WritesSTL verifies that --format stl emits a binary STL whose size
// matches its triangle count header.
func TestMesh_WritesSTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wire.stl")
	_, err := run(t, "", "mesh", "--seed", "3", "--format", "STL", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 84)
	n := binary.LittleEndian.Uint32(data[80:84])
	require.Equal(t, 84+50*int(n), len(data))
}

// TestWriteMeshFile verifies that create and encode failures surface with the
// path, and that a written file is complete once writeMeshFile returns.
func TestWriteMeshFile(t *testing.T) {
	m, err := tube.Tube([]curve.Point{curve.Zero, curve.UnitX}, 0.1, 4)
	require.NoError(t, err)
	dir := t.TempDir()

	path := filepath.Join(dir, "ok.obj")
	require.NoError(t, writeMeshFile(path, m, tube.Mesh.WriteOBJ))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var want bytes.Buffer
	require.NoError(t, m.WriteOBJ(&want))
	require.Equal(t, want.String(), string(data))

	err = writeMeshFile(dir, m, tube.Mesh.WriteOBJ)
	require.ErrorContains(t, err, "failed to create")

	boom := errors.New("boom")
	err = writeMeshFile(filepath.Join(dir, "bad.obj"), m, func(tube.Mesh, io.Writer) error { return boom })
	require.ErrorIs(t, err, boom)
	require.ErrorContains(t, err, "failed to write")
}

func TestMesh_Errors(t *testing.T) {
	_, err := run(t, "", "mesh", "--format", "ply")
	require.ErrorContains(t, err, "unknown mesh format")

	_, err = run(t, "", "mesh", "--piece", "frayed")
	require.ErrorIs(t, err, wire.ErrUnknownPiece)

	_, err = run(t, "", "mesh", "--fidelity", "blurry")
	require.ErrorIs(t, err, wire.ErrUnknownFidelity)

	_, err = run(t, "", "mesh", "--wire", "7")
	require.Error(t, err)
}

func TestMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.prom")
	_, cut := solution(t, 4)
	_, err := run(t, "", "play", "--seed", "4", "--metrics-file", path, cut)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "perplexing_cuts_total")
	require.Contains(t, string(data), "perplexing_solves_total 1")
	require.Contains(t, string(data), "perplexing_generation_attempts")
}

// TestConfigFile verifies that a saved config file drives generation the
// same way as the equivalent flags.
func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perplexing.yaml")
	cfg := config.DefaultConfig()
	cfg.Seed = 21
	require.NoError(t, cfg.Save(path))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "generate", "--reveal"})
	require.NoError(t, cmd.Execute())

	from, err := run(t, "", "generate", "--seed", "21", "--reveal")
	require.NoError(t, err)
	skipID := func(s string) string { return s[strings.Index(s, "\n")+1:] }
	require.Equal(t, skipID(from), skipID(out.String()))
}
