package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"hotkeyoverlay/internal/assets"
)

func main() {
	dir := flag.String("out", filepath.Join("assets", "icons"), "output directory")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0755); err != nil {
		log.Fatalf("Failed to create %s: %v", *dir, err)
	}

	data := assets.IconPNG()
	for _, name := range []string{"tray.png", "app.png"} {
		path := filepath.Join(*dir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		log.Printf("Wrote %s", path)
	}
}
