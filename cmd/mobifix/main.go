// Command mobifix stamps an ASIN and the EBOK content type into Kindle
// ebooks so that side-loaded books show up as books rather than documents.
package main

func main() {
	execute()
}
