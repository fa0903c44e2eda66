package core

// Version is the version of the compiler
const Version = "0.3.0"
