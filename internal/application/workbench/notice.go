package workbench

// NoticeKind classifies a notice for rendering.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeInfo    NoticeKind = "info"
	NoticeError   NoticeKind = "error"
)

// Notice is the short message shown to the user after an action.
type Notice struct {
	Kind NoticeKind
	Text string
}

func success(text string) Notice { return Notice{Kind: NoticeSuccess, Text: text} }
func info(text string) Notice { return Notice{Kind: NoticeInfo, Text: text} }
func failure(text string) Notice { return Notice{Kind: NoticeError, Text: text} }

// User-facing notice texts.
const (
	MsgCommandCopied       = "Command copied to clipboard"
	MsgCopyFailed          = "Copy failed: "
	MsgNameAndCommand      = "Please enter a command and a name"
	MsgCommandSaved        = "Command saved"
	MsgCommandDeleted      = "Command deleted"
	MsgDeleteCancelled     = "Delete cancelled"
	MsgDeleteQuestion      = "Delete this command?"
	MsgCommandLoaded       = "Command loaded into the editor"
	MsgConfigSaved         = "Configuration saved"
	MsgFillAIConfig        = "Please fill in the API configuration first"
	MsgConnectionOK        = "Connection successful"
	MsgConnectionFailed    = "Connection failed: "
	MsgConnectionError     = "Connection error: "
	MsgEnterPrompt         = "Please enter a prompt"
	MsgGenerating          = "Generating..."
	MsgGenerateError       = "Error: "
	MsgRequestFailed       = "Request failed: "
	MsgNoSuchCommand       = "No saved command at that position"
	MsgClipboardDisabled   = "clipboard unavailable"
	MsgNothingToCopy       = "Nothing to copy"
	MsgImportFailed        = "Import failed: "
	MsgExportFailed        = "Export failed: "
	MsgConfigSaveFailed    = "Saving configuration failed: "
	MsgConfigLoadFailed    = "Loading configuration failed: "
	MsgInvalidFragmentSlot = "No fragment at that position"
)
