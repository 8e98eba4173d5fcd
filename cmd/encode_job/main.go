// One-shot job: uploads a file to the compression server and saves the
// returned artifact next to the input.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"mzip_go/pkg/mzipapi"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: encode_job <file> [server-url]")
		os.Exit(1)
	}
	if len(os.Args) > 2 {
		mzipapi.SetBaseURL(os.Args[2])
	}

	res, err := mzipapi.EncodeFile(os.Args[1])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	outPath := filepath.Join(filepath.Dir(os.Args[1]), res.ArtifactName)
	if err := os.WriteFile(outPath, res.Artifact, 0o644); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Printf("%s: %d -> %d bytes (padding %d)\n",
		res.ArtifactName, res.OriginalSize, res.CompressedSize, res.Padding)
}
