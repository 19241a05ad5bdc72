package views

// ConvAIConfig is the free-form object handed to ElevenLabsConvAI.init.
// The widget script owns its shape; nothing here validates it.
type ConvAIConfig map[string]any

// convAIInitID is the id of the JSON script element the loader reads.
const convAIInitID = "convai-init"
