package menugen

// Version is the current menugen release.
var Version = "0.2.0"
