// Command qariee manages Qariee CDN content: the reciter catalog, bulk
// audio transfer to the object store, CDN verification, and the bundled app
// database.
package main
