// Command underbar exposes the arr and object helpers on the command line.
// Every sub-command takes JSON documents as arguments (or reads them from
// stdin) and prints one JSON document:
//
//	underbar uniq '[1,2,1,3]'                 # [1,2,3]
//	underbar intersection '[1,2,3]' '[2,3,4]' # [2,3]
//	underbar extend '{"name":"moe"}' '{"age":50}'
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
