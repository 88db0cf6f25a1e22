package fsm

import "github.com/anassar/mudeer/core/telegram/state"

// Conversation states. Every user sits in exactly one of these; StateMain is
// the fallback for unknown users.
const (
	StateMain          state.State = "main"
	StatePhone         state.State = "phone"
	StateAddName       state.State = "add_name"
	StateAddPhone      state.State = "add_phone"
	StateEditPhoneID   state.State = "edit_phone_id"
	StateEditPhoneNew  state.State = "edit_phone_new"
	StateDelPhone      state.State = "del_phone"
	StateFileMenu      state.State = "file_menu"
	StateImageMenu     state.State = "image_menu"
	StateCreateFolder  state.State = "create_folder"
	StateDeleteFolder  state.State = "delete_folder"
	StateDelFile       state.State = "del_file"
	StateMoveFile      state.State = "move_file"
	StateDownloadFile  state.State = "download_file"
	StateDelImage      state.State = "del_image"
	StateMoveImage     state.State = "move_image"
	StateDownloadImage state.State = "download_image"
	StateDBManage      state.State = "db_manage"
	StateAI            state.State = "ai"
)

// Scratch markers telling folder create/delete which menu to return to.
const (
	scratchFile  = "file"
	scratchImage = "image"
)
