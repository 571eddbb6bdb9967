// consolelog-demo serves the browser demo page for the console logger.
package main

import "consolelog/cmd/consolelog-demo/cmd"

func main() {
	cmd.Execute()
}
