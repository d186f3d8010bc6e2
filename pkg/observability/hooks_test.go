package observability

import (
	"context"
	"testing"
	"time"

	"github.com/openmesh-network/meshviz/pkg/topology"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()
	params := topology.DefaultParams()

	p := NoopPipelineHooks{}
	p.OnSceneStart(ctx, params)
	p.OnSceneComplete(ctx, params, SceneCounts{XNodes: 58, VMs: 34, Connections: 658}, time.Millisecond)
	p.OnRenderStart(ctx, "rings", []string{"svg"})
	p.OnRenderComplete(ctx, "rings", []string{"svg"}, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/scene.svg")
	h.OnResponse(ctx, "GET", "/scene.{format}", 200, time.Second)
}

func TestDefaultsAreNoop(t *testing.T) {
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should default to NoopPipelineHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should default to NoopCacheHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should default to NoopHTTPHooks")
	}
}

// sceneCounter only implements PipelineHooks.
type sceneCounter struct {
	NoopPipelineHooks
	scenes int
	last   SceneCounts
}

func (s *sceneCounter) OnSceneComplete(_ context.Context, _ topology.Params, c SceneCounts, _ time.Duration) {
	s.scenes++
	s.last = c
}

// allHooks implements every hook interface.
type allHooks struct {
	NoopPipelineHooks
	NoopCacheHooks
	NoopHTTPHooks
}

func TestRegister(t *testing.T) {
	t.Cleanup(Reset)

	tests := []struct {
		name string
		h    any
		want int
	}{
		{"pipeline only", &sceneCounter{}, 1},
		{"all", &allHooks{}, 3},
		{"none", struct{}{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			if got := Register(tt.h); got != tt.want {
				t.Errorf("Register() matched %d interfaces, want %d", got, tt.want)
			}
		})
	}
}

func TestRegisterRoutesEvents(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	counter := &sceneCounter{}
	Register(counter)

	want := SceneCounts{XNodes: 10, VMs: 6, Connections: 20}
	Pipeline().OnSceneComplete(context.Background(), topology.Params{NodeCount: 10, AllocationPercent: 1}, want, time.Millisecond)

	if counter.scenes != 1 || counter.last != want {
		t.Errorf("counter = %d scenes, last %+v; want 1, %+v", counter.scenes, counter.last, want)
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("registering pipeline hooks must leave cache hooks alone")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	custom := &sceneCounter{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}
}
