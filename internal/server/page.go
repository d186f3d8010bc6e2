package server

import (
	"html/template"
	"net/http"

	"github.com/openmesh-network/meshviz/pkg/render/draw"
	"github.com/openmesh-network/meshviz/pkg/topology"
)

type pageData struct {
	Title         string
	Params        topology.Params
	MinNodes      int
	MaxNodes      int
	MinAllocation int
	MaxAllocation int
}

var pageTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 0; background: #f8fafc; color: #0f172a; }
    header { text-align: center; padding: 1.5rem 1rem 0; }
    h1 { font-size: 1.75rem; margin: 0; }
    main { max-width: 1200px; margin: 0 auto; padding: 1rem; }
    .stage { aspect-ratio: 3 / 2; background: #fff; border-radius: 12px; box-shadow: 0 1px 3px rgba(0,0,0,.1); }
    .stage img { width: 100%; height: 100%; display: block; }
    .controls { display: grid; grid-template-columns: 1fr 1fr; gap: 1.5rem; margin-top: 1.5rem; }
    label { display: block; font-weight: 600; margin-bottom: .25rem; }
    input[type=range] { width: 100%; }
    .totals { margin-top: 1rem; display: flex; gap: 2rem; justify-content: center; color: #475569; }
    .totals b { color: #0f172a; }
  </style>
</head>
<body>
  <header><h1>{{.Title}}</h1></header>
  <main>
    <div class="stage"><object id="scene" type="image/svg+xml" data="/scene.svg?nodes={{.Params.NodeCount}}&allocation={{.Params.AllocationPercent}}" aria-label="Topology"></object></div>
    <div class="controls">
      <div>
        <label for="nodes">XNodes: <span id="nodes-value">{{.Params.NodeCount}}</span></label>
        <input id="nodes" type="range" min="{{.MinNodes}}" max="{{.MaxNodes}}" step="1" value="{{.Params.NodeCount}}">
      </div>
      <div>
        <label for="allocation">Resource allocation: <span id="allocation-value">{{.Params.AllocationPercent}}</span>%</label>
        <input id="allocation" type="range" min="{{.MinAllocation}}" max="{{.MaxAllocation}}" step="1" value="{{.Params.AllocationPercent}}">
      </div>
    </div>
    <div class="totals">
      <span>CPU <b id="cpu"></b> vCPU</span>
      <span>Memory <b id="memory"></b> GB</span>
      <span>Storage <b id="storage"></b> GB</span>
    </div>
  </main>
  <script>
    const nodes = document.getElementById("nodes");
    const allocation = document.getElementById("allocation");
    const scene = document.getElementById("scene");
    let pending;
    function query() {
      return "nodes=" + nodes.value + "&allocation=" + allocation.value;
    }
    async function refresh() {
      document.getElementById("nodes-value").textContent = nodes.value;
      document.getElementById("allocation-value").textContent = allocation.value;
      scene.data = "/scene.svg?" + query();
      const res = await fetch("/resources?" + query());
      if (!res.ok) return;
      const body = await res.json();
      document.getElementById("cpu").textContent = body.display.cpu;
      document.getElementById("memory").textContent = body.display.memory;
      document.getElementById("storage").textContent = body.display.storage;
    }
    function schedule() {
      clearTimeout(pending);
      pending = setTimeout(refresh, 50);
    }
    nodes.addEventListener("input", schedule);
    allocation.addEventListener("input", schedule);
    refresh();
  </script>
</body>
</html>
`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	p, err := s.paramsFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = pageTemplate.Execute(w, pageData{
		Title:         draw.DefaultTitle,
		Params:        p,
		MinNodes:      topology.MinNodeCount,
		MaxNodes:      topology.MaxNodeCount,
		MinAllocation: topology.MinAllocation,
		MaxAllocation: topology.MaxAllocation,
	})
	if err != nil {
		s.logger.Error("render index", "err", err)
	}
}
