package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/perplexing/tube"
	"github.com/katalvlaran/perplexing/wire"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMeshCmd(a *app) *cobra.Command {
	var (
		number   int
		piece    string
		fidelity string
		format   string
		out      string
	)

	cmd := &cobra.Command{
		Use:   "mesh",
		Short: "Export one wire mesh as Wavefront OBJ or binary STL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pc, err := wire.ParsePiece(piece)
			if err != nil {
				return err
			}
			fid, err := wire.ParseFidelity(fidelity)
			if err != nil {
				return err
			}
			encode, err := meshEncoder(format)
			if err != nil {
				return err
			}
			p, err := a.generate()
			if err != nil {
				return err
			}

			face := a.cfg.Face()
			face.Metrics = a.metrics
			m, err := face.Build(p, number-1, pc, fid, a.cfg.WireOptions()...)
			if err != nil {
				return err
			}

			if out == "-" {
				err = encode(m, cmd.OutOrStdout())
			} else {
				err = writeMeshFile(out, m, encode)
			}
			if err != nil {
				return err
			}

			a.logger.Info("mesh written",
				zap.String("module", p.ID),
				zap.Int("wire", number),
				zap.Stringer("piece", pc),
				zap.Stringer("fidelity", fid),
				zap.String("format", format),
				zap.Int("vertices", m.VertexCount()),
				zap.Int("triangles", m.TriangleCount()),
				zap.String("out", out),
			)
			return nil
		},
	}
	cmd.Flags().IntVar(&number, "wire", 1, "wire number, 1-based")
	cmd.Flags().StringVar(&piece, "piece", "uncut", "uncut, cut or copper")
	cmd.Flags().StringVar(&fidelity, "fidelity", "wire", "wire, highlight or collider")
	cmd.Flags().StringVar(&format, "format", "obj", "obj or stl")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")
	return cmd
}

// meshEncoder maps a --format value onto a tube.Mesh exporter.
func meshEncoder(format string) (func(tube.Mesh, io.Writer) error, error) {
	switch strings.ToLower(format) {
	case "obj":
		return tube.Mesh.WriteOBJ, nil
	case "stl":
		return tube.Mesh.WriteSTL, nil
	default:
		return nil, fmt.Errorf("unknown mesh format %q (want obj or stl)", format)
	}
}

// writeMeshFile encodes m into a new file at path. The Close error is
// returned, not dropped.
func writeMeshFile(path string, m tube.Mesh, encode func(tube.Mesh, io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := encode(m, f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
