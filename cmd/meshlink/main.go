// Command meshlink talks to a Meshtastic radio over TCP, serial or BLE.
package main

func main() {
	execute()
}
