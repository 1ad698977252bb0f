package observability

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

type countingPipeline struct {
	NoopPipelineHooks
	fits int
}

func (c *countingPipeline) OnFitStart(context.Context, int) { c.fits++ }

type countingCache struct {
	NoopCacheHooks
	hits int
}

func (c *countingCache) OnCacheHit(context.Context, string) { c.hits++ }

func TestDefaultsAreNoop(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Errorf("Pipeline() = %T", Pipeline())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T", Cache())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("HTTP() = %T", HTTP())
	}

	ctx := context.Background()
	Pipeline().OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)
	Cache().OnCacheSet(ctx, "artifact", 1024)
	HTTP().OnError(ctx, "GET", "/layouts/x", nil)
}

func TestInstallRestore(t *testing.T) {
	Reset()
	defer Reset()

	p := &countingPipeline{}
	restoreP := Install(Hooks{Pipeline: p})

	c := &countingCache{}
	restoreC := Install(Hooks{Cache: c})

	ctx := context.Background()
	Pipeline().OnFitStart(ctx, 2)
	Cache().OnCacheHit(ctx, "layout")
	if p.fits != 1 || c.hits != 1 {
		t.Fatalf("fits=%d hits=%d, want 1 each", p.fits, c.hits)
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("nil HTTP field replaced the installed hooks")
	}

	restoreC()
	if Cache() != CacheHooks(NoopCacheHooks{}) || Pipeline() != PipelineHooks(p) {
		t.Error("restore did not undo only the last Install")
	}
	restoreP()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("pipeline hooks not restored")
	}
}

func TestSettersIgnoreNil(t *testing.T) {
	Reset()
	defer Reset()

	p := &countingPipeline{}
	SetPipelineHooks(p)
	SetPipelineHooks(nil)
	SetCacheHooks(nil)
	SetHTTPHooks(nil)

	if Pipeline() != PipelineHooks(p) {
		t.Errorf("Pipeline() = %T after nil set", Pipeline())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T after nil set", Cache())
	}
}

func TestLogHooks(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	NewLogHooks(logger).Register()

	ctx := context.Background()
	Pipeline().OnFitComplete(ctx, 3, time.Millisecond, nil)
	Cache().OnCacheMiss(ctx, "artifact")
	HTTP().OnResponse(ctx, "POST", "/render", 201, time.Millisecond)

	out := buf.String()
	for _, want := range []string{"fit done", "charts=3", "cache miss", "type=artifact", "status=201"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
