// Interactive front end: prompts for filenames and encodes each one
// until a blank line is entered. Works with files of any type.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"mzip_go/pkg/mzip"
)

func main() {
	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("File name (type nothing to quit): ")
		if !in.Scan() {
			return
		}
		file := strings.TrimSpace(in.Text())
		if file == "" {
			return
		}

		if _, err := mzip.EncodeFile(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				fmt.Println("File was not found!")
			} else {
				fmt.Println(err)
			}
		} else {
			fmt.Println("Initialized!")
		}
		fmt.Println()
	}
}
