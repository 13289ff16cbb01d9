package app

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quartercastle/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suxatcode/nbody-barnes-hut/quadtree"
	"github.com/suxatcode/nbody-barnes-hut/simulation"
)

func TestGetEnvConfig(t *testing.T) {
	t.Setenv("THETA", "0.5")
	t.Setenv("STEPS", "20")
	t.Setenv("INTEGRATOR", "rk4")
	conf, err := GetEnvConfig()
	require.NoError(t, err)
	assert.Equal(t, 0.5, conf.Theta)
	assert.Equal(t, 20, conf.Steps)
	assert.Equal(t, "rk4", conf.Integrator)
	assert.Equal(t, 1000.0, conf.FieldWidth)
	assert.Equal(t, 1e-6, conf.Gravity)
	assert.Equal(t, "info", conf.LogLevel)

	t.Setenv("STEPS", "many")
	_, err = GetEnvConfig()
	assert.Error(t, err)
}

func TestConfig_SimulationConfig(t *testing.T) {
	for _, test := range []struct {
		Name      string
		Conf      Config
		Exp       simulation.Config
		ExpectErr bool
	}{
		{
			Name: "defaults",
			Conf: Config{FieldWidth: 10, FieldHeight: 20, Theta: 1.2, Gravity: 1e-6, Steps: 1, Integrator: "four-stage"},
			Exp:  simulation.Config{Width: 10, Height: 20, Theta: 1.2, G: 1e-6, Integrator: simulation.IntegratorFourStage},
		},
		{
			Name: "rk4 with tuning",
			Conf: Config{FieldWidth: 10, FieldHeight: 10, Parallelization: 3, MaxTreeDepth: 7, Integrator: "rk4"},
			Exp:  simulation.Config{Width: 10, Height: 10, Parallelization: 3, MaxTreeDepth: 7, Integrator: simulation.IntegratorRK4},
		},
		{
			Name:      "unknown integrator",
			Conf:      Config{FieldWidth: 10, FieldHeight: 10, Integrator: "euler"},
			ExpectErr: true,
		},
		{
			Name:      "negative steps",
			Conf:      Config{FieldWidth: 10, FieldHeight: 10, Steps: -1, Integrator: "rk4"},
			ExpectErr: true,
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			conf, err := test.Conf.SimulationConfig()
			if test.ExpectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.Exp, conf)
		})
	}
}

func TestDecodeDocument(t *testing.T) {
	for _, test := range []struct {
		Name      string
		Input     string
		Exp       []*simulation.Particle
		ExpectErr bool
	}{
		{
			Name:  "bodies with ids",
			Input: `{"bodies":[{"id":"a","pos":[1,2],"vel":[3,4],"mass":5},{"id":"b","pos":[6,7],"mass":8}]}`,
			Exp: []*simulation.Particle{
				{ID: "a", Pos: vector.Vector{1, 2}, Vel: vector.Vector{3, 4}, M: 5},
				{ID: "b", Pos: vector.Vector{6, 7}, M: 8},
			},
		},
		{
			Name:  "empty",
			Input: `{"bodies":[]}`,
			Exp:   []*simulation.Particle{},
		},
		{
			Name:      "invalid json",
			Input:     `{"bodies":[`,
			ExpectErr: true,
		},
		{
			Name:      "null body",
			Input:     `{"bodies":[null]}`,
			ExpectErr: true,
		},
		{
			Name:      "position with three components",
			Input:     `{"bodies":[{"id":"a","pos":[1,2,3],"mass":1}]}`,
			ExpectErr: true,
		},
		{
			Name:      "missing position",
			Input:     `{"bodies":[{"id":"a","mass":1}]}`,
			ExpectErr: true,
		},
		{
			Name:      "velocity with one component",
			Input:     `{"bodies":[{"id":"a","pos":[1,2],"vel":[1],"mass":1}]}`,
			ExpectErr: true,
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			doc, err := DecodeDocument(strings.NewReader(test.Input))
			if test.ExpectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.Exp, doc.Bodies)
		})
	}
}

func TestDecodeDocument_generatesIDs(t *testing.T) {
	doc, err := DecodeDocument(strings.NewReader(`{"bodies":[{"pos":[1,2],"mass":1},{"pos":[3,4],"mass":1}]}`))
	require.NoError(t, err)
	require.Len(t, doc.Bodies, 2)
	assert.NotEmpty(t, doc.Bodies[0].ID)
	assert.NotEmpty(t, doc.Bodies[1].ID)
	assert.NotEqual(t, doc.Bodies[0].ID, doc.Bodies[1].ID)
}

func TestEncodeDocument(t *testing.T) {
	buf := bytes.Buffer{}
	doc := &Document{Bodies: []*simulation.Particle{
		{ID: "a", Pos: vector.Vector{1, 2}, Vel: vector.Vector{0.5, 0}, M: 3},
	}}
	assert.NoError(t, EncodeDocument(&buf, doc))
	assert.JSONEq(t, `{"bodies":[{"id":"a","pos":[1,2],"vel":[0.5,0],"mass":3}]}`, buf.String())

	decoded, err := DecodeDocument(&buf)
	assert.NoError(t, err)
	assert.Equal(t, doc, decoded)
}

func TestDrawRegions(t *testing.T) {
	bounds := quadtree.Rect{X: 0, Y: 0, Width: 100, Height: 50}
	regions := map[quadtree.Path]quadtree.Rect{
		quadtree.Root: bounds,
		quadtree.Root.Child(quadtree.NW): bounds.North().West(),
	}
	bodies := []*simulation.Particle{
		{ID: "in", Pos: vector.Vector{10, 10}, M: 1},
		{ID: "out", Pos: vector.Vector{-10, 10}, M: 1},
	}
	filename := filepath.Join(t.TempDir(), "regions.png")
	require.NoError(t, drawRegions(regions, bodies, bounds, filename, false))

	file, err := os.Open(filename)
	require.NoError(t, err)
	defer file.Close()
	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, drawWidth, img.Bounds().Dx())
	assert.Equal(t, drawWidth/2, img.Bounds().Dy())
	r, g, b, _ := img.At(80, 80).RGBA()
	assert.Equal(t, []uint32{0, 0, 0}, []uint32{r, g, b}, "body pixel should be black")
}

func TestDrawRegions_invalidFile(t *testing.T) {
	bounds := quadtree.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	filename := filepath.Join(t.TempDir(), "missing-dir", "regions.png")
	assert.Error(t, drawRegions(nil, nil, bounds, filename, true))
}

func testConfig() Config {
	return Config{
		LogLevel:    "info",
		FieldWidth:  100,
		FieldHeight: 100,
		Theta:       1.2,
		Gravity:     1e-6,
		TimeStep:    1,
		Steps:       1,
		Integrator:  "rk4",
	}
}

func TestRun(t *testing.T) {
	conf := testConfig()
	conf.PNGOutput = filepath.Join(t.TempDir(), "out.png")
	in := strings.NewReader(`{"bodies":[{"id":"a","pos":[10,10],"vel":[1,0],"mass":1},{"id":"b","pos":[500,10],"mass":1}]}`)
	out := bytes.Buffer{}

	stats, err := Run(context.Background(), conf, in, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Iterations)
	assert.Equal(t, 1, stats.OutOfBounds)

	doc, err := DecodeDocument(&out)
	require.NoError(t, err)
	require.Len(t, doc.Bodies, 2)
	assert.Equal(t, "a", doc.Bodies[0].ID)
	assert.InDelta(t, 11.0, doc.Bodies[0].Pos.X(), 1e-12)
	assert.InDelta(t, 10.0, doc.Bodies[0].Pos.Y(), 1e-12)
	assert.Equal(t, vector.Vector{500, 10}, doc.Bodies[1].Pos, "out of bounds body must not move")
	assert.FileExists(t, conf.PNGOutput)
}

func TestRun_errors(t *testing.T) {
	for _, test := range []struct {
		Name  string
		Conf  func() Config
		Input string
	}{
		{
			Name:  "invalid integrator",
			Conf:  func() Config { c := testConfig(); c.Integrator = "leapfrog"; return c },
			Input: `{"bodies":[]}`,
		},
		{
			Name:  "invalid field",
			Conf:  func() Config { c := testConfig(); c.FieldWidth = 0; return c },
			Input: `{"bodies":[]}`,
		},
		{
			Name:  "invalid document",
			Conf:  testConfig,
			Input: `[]`,
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			_, err := Run(context.Background(), test.Conf(), strings.NewReader(test.Input), io.Discard)
			assert.Error(t, err)
		})
	}
}

func TestRun_cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	conf := testConfig()
	conf.Steps = 100
	out := bytes.Buffer{}
	stats, err := Run(ctx, conf, strings.NewReader(`{"bodies":[{"id":"a","pos":[10,10],"vel":[1,0],"mass":1}]}`), &out)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Iterations)
	assert.JSONEq(t, `{"bodies":[{"id":"a","pos":[10,10],"vel":[1,0],"mass":1}]}`, out.String())
}

func TestMetricsHandler(t *testing.T) {
	_, err := Run(context.Background(), testConfig(), strings.NewReader(`{"bodies":[{"id":"a","pos":[10,10],"mass":1}]}`), io.Discard)
	require.NoError(t, err)

	s := httptest.NewServer(metricsHandler())
	defer s.Close()
	r, err := s.Client().Get(s.URL + "/metrics")
	require.NoError(t, err)
	defer r.Body.Close()
	data, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "nbody_step_duration_seconds")
	assert.Contains(t, string(data), "nbody_step_bodies_total")
}
