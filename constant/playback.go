package constant

// SampleContentID identifies the built-in demo title that ships with every catalog chain.
const SampleContentID = "sample-1"

// FallbackMediaURL is played whenever a title cannot be resolved or its source fails at runtime.
const FallbackMediaURL = "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4"
