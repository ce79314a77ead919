//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/stridetext/stride/commander"
	"github.com/stridetext/stride/editor"
	"github.com/stridetext/stride/history"
	"github.com/stridetext/stride/screen"
)

func main() {

	var filename string
	var script string
	maxHistory := history.DefaultMaxEntries

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // eval program
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				log.Output(1, "No file specified for --eval option")
				return
			}
		case "--history": // undo depth
			i++
			if i >= len(os.Args) {
				log.Output(1, "No value specified for --history option")
				return
			}
			n, err := strconv.Atoi(os.Args[i])
			if err != nil {
				log.Output(1, err.Error())
				return
			}
			maxHistory = n
		default:
			filename = argi
		}
	}

	if filename == "" {
		filename = askForFileName()
		if filename == "" {
			fmt.Println("No file specified. Exiting.")
			os.Exit(1)
		}
	}
	if fileinfo, err := os.Stat(filename); err == nil && fileinfo.IsDir() {
		log.Output(1, filename+" is a directory")
		os.Exit(1)
	}

	if script != "" {
		// Run a script and exit.
		e := editor.NewEditor(editor.DefaultSize, maxHistory)
		if err := e.ReadFile(filename); err != nil {
			log.Fatal(err)
		}
		c := commander.NewCommander(e)
		if err := c.ParseEvalFile(script); err != nil {
			log.Fatal(err)
		}
		return
	}

	// Create a screen to manage display.
	s, err := screen.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	// Open a log file.
	f, err := os.OpenFile(os.Getenv("HOME")+"/.stridelog", os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	log.SetOutput(f)
	defer f.Close()

	// The editor manages all text manipulation.
	e := editor.NewEditor(screen.TextSize(s.GetSize()), maxHistory)
	if err := e.ReadFile(filename); err != nil {
		log.Output(1, err.Error())
		return
	}

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		err = c.ProcessEvent(s.GetNextEvent())
		if err != nil {
			log.Output(1, err.Error())
		}
	}
}

// askForFileName offers to create a file when none was named.
func askForFileName() string {
	in := bufio.NewReader(os.Stdin)
	fmt.Print("No file specified, would you like to create a file? Y/N: ")
	answer, _ := in.ReadString('\n')
	answer = strings.TrimSpace(answer)
	if answer != "Y" && answer != "y" {
		return ""
	}
	fmt.Print("Enter a file name: ")
	name, _ := in.ReadString('\n')
	return strings.TrimSpace(name)
}
