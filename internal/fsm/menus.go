package fsm

// Menu is a reply keyboard layout, row by row. The telegram layer renders it
// through the shared keyboard builder.
type Menu [][]string

var (
	mainMenu = Menu{
		{btnPhones},
		{btnFiles, btnImages},
		{btnDBManage},
		{btnAI},
	}

	phoneMenu = Menu{
		{btnAddPhone, btnListPhones},
		{btnEditPhone, btnDelPhone},
		{btnBack},
	}

	fileMenu = Menu{
		{btnListFiles, btnCreateFolder},
		{btnMoveFile, btnDelFile},
		{btnDownloadFiles},
		{btnDeleteFolder},
		{btnListFolders},
		{btnBack},
	}

	imageMenu = Menu{
		{btnListImages, btnCreateImgFolder},
		{btnMoveImage, btnDelImage},
		{btnDownloadImages},
		{btnDeleteFolder},
		{btnListImageFolders},
		{btnBack},
	}

	dbMenu = Menu{
		{btnEmailReport},
		{btnBack},
	}
)

// Reply is one outbound message produced by the dispatcher. Exactly one of
// DocumentRef/PhotoRef may be set; Menu and RemoveKeyboard are mutually
// exclusive markup hints.
type Reply struct {
	Text           string
	Menu           Menu
	RemoveKeyboard bool
	DocumentRef    string
	PhotoRef       string
}

func textReply(text string) Reply         { return Reply{Text: text} }
func menuReply(text string, m Menu) Reply { return Reply{Text: text, Menu: m} }
