package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/Stefanjafry/Toronto-KDTree-TreeMap/kdtree"
	"github.com/Stefanjafry/Toronto-KDTree-TreeMap/mapview"
	"github.com/Stefanjafry/Toronto-KDTree-TreeMap/treedata"
)

func main() {
	dataPath := flag.String("data", "data/york_treelist.csv", "path to the tree inventory csv")
	addr := flag.String("addr", ":8080", "listen address")
	dump := flag.Bool("dump", false, "print the tree structure and exit")
	flag.Parse()

	trees, err := treedata.ReadTrees(*dataPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Read %d trees from %s", len(trees), *dataPath)

	index, err := kdtree.New(trees)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Built a KD tree of %d nodes", index.Size())

	if *dump {
		fmt.Print(index.Display())
		return
	}

	srv := &server{view: mapview.New(trees, index)}

	http.HandleFunc("/", handleHome)
	http.HandleFunc("/nearest", srv.handleNearest)
	http.HandleFunc("/map.png", srv.handleMap)
	http.HandleFunc("/trees.geojson", srv.handleGeoJSON)

	fmt.Printf("Server starting on %s...\n", *addr)
	fmt.Printf("Click the map at http://localhost%s to find the nearest tree\n", *addr)

	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal(err)
	}
}

func handleHome(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Municipal Trees in Toronto</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 1380px;
            margin: 30px auto;
            padding: 20px;
        }
        #map {
            border: 1px solid #ddd;
            border-radius: 4px;
            cursor: crosshair;
            max-width: 100%;
        }
        #result {
            margin-top: 20px;
            padding: 15px;
            background: #f9f9f9;
            border-radius: 8px;
            font-family: monospace;
        }
    </style>
</head>
<body>
    <h1>Municipal Trees in Toronto</h1>
    <p>Click anywhere on the map to find the nearest municipal tree.</p>

    <img id="map" src="/map.png" alt="Tree map">

    <div id="result">Click the map to query.</div>

    <script>
        const map = document.getElementById('map');
        const result = document.getElementById('result');

        map.addEventListener('click', async (e) => {
            const rect = map.getBoundingClientRect();
            const scaleX = map.naturalWidth / rect.width;
            const scaleY = map.naturalHeight / rect.height;
            const px = (e.clientX - rect.left) * scaleX;
            const py = (e.clientY - rect.top) * scaleY;

            result.textContent = 'Searching...';
            try {
                const resp = await fetch('/nearest?px=' + px + '&py=' + py);
                const data = await resp.json();
                if (!resp.ok) {
                    result.textContent = 'Error: ' + data.error;
                    return;
                }
                const t = data.tree;
                result.textContent = 'The nearest Municipal Tree is a: ' + t.species +
                    ' at (' + t.lat.toFixed(3) + ', ' + t.lon.toFixed(3) + ')' +
                    ' with diameter ' + t.diameter +
                    ' (distance ' + data.distance.toFixed(5) + ')';
                map.src = '/map.png?t=' + Date.now();
            } catch (err) {
                result.textContent = 'Error: ' + err.message;
            }
        });
    </script>
</body>
</html>`
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, html)
}
