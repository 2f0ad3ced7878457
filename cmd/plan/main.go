// Command plan inspects, validates, converts and renders floor plan files.
package main

func main() {
	Execute()
}
