package fsm

// Button labels. These double as the match keys for menu states, so they must
// stay byte-identical to what the reply keyboards render.
const (
	btnBack = "🔙 رجوع"

	btnPhones   = "📞 الأرقام"
	btnFiles    = "📁 الملفات"
	btnImages   = "🖼️ الصور"
	btnDBManage = "🗄️ إدارة قواعد البيانات"
	btnAI       = "🤖 الذكاء الاصطناعي"

	btnAddPhone   = "➕ إضافة رقم"
	btnListPhones = "📋 عرض الأرقام"
	btnEditPhone  = "✏️ تعديل رقم"
	btnDelPhone   = "❌ حذف رقم"

	btnListFiles     = "📁 عرض الملفات"
	btnCreateFolder  = "🗂️ إنشاء مجلد"
	btnMoveFile      = "📤 نقل ملف"
	btnDelFile       = "❌ حذف ملف"
	btnDownloadFiles = "📁 تنزيل ملفات"
	btnDeleteFolder  = "❌ حذف مجلد"
	btnListFolders   = "📂 عرض المجلدات"

	btnListImages       = "🖼️ عرض الصور"
	btnCreateImgFolder  = "🗂️ إنشاء مجلد صور"
	btnMoveImage        = "📤 نقل صورة"
	btnDelImage         = "❌ حذف صورة"
	btnDownloadImages   = "🖼️ تنزيل صور"
	btnListImageFolders = "📂 عرض مجلدات الصور"

	btnEmailReport = "📊 إرسال تقرير يومي إلى الإيميل"
)

// Reply texts.
const (
	msgWelcome     = "👋 أهلاً بك"
	msgPhoneMenu   = "📞 إدارة الأرقام"
	msgFileMenu    = "📁 إدارة الملفات"
	msgImageMenu   = "🖼️ إدارة الصور"
	msgDBMenu      = "🗄️ إدارة قواعد البيانات"
	msgAskQuestion = "🤖 اكتب سؤالك:"

	msgAskContactName  = "👤 اسم الشخص:"
	msgAskContactPhone = "📞 رقم الهاتف:"
	msgAskContactID    = "✏️ اكتب ID الرقم:"
	msgAskDeleteID     = "❌ اكتب ID الرقم:"
	msgAskNewPhone     = "📞 الرقم الجديد:"
	msgContactSaved    = "✅ تم حفظ الرقم"
	msgContactUpdated  = "✏️ تم التعديل"
	msgContactDeleted  = "🗑️ تم الحذف"
	msgNoContacts      = "📭 لا توجد أرقام"

	msgAskFolderName      = "اسم المجلد:"
	msgAskImgFolderName   = "اسم مجلد الصور:"
	msgAskFolderToDelete  = "🗑️ اسم المجلد:"
	msgFolderCreated      = "✅ تم إنشاء المجلد"
	msgFolderDeleted      = "🗑️ تم حذف المجلد"
	msgFolderExists       = "❌ المجلد موجود"
	msgFolderMissing      = "❌ المجلد غير موجود"
	msgFolderNotEmpty     = "❌ المجلد غير فارغ"
	msgDefaultFolderGuard = "❌ لا يمكن حذف المجلد الافتراضي"
	msgNoFolders          = "لا توجد"

	msgAskFileID    = "ID الملف:"
	msgAskImageID   = "ID الصورة:"
	msgAskMoveFile  = "ID الملف + اسم المجلد الجديد"
	msgAskMoveImage = "ID الصورة + اسم المجلد الجديد"
	msgMoved        = "📤 تم النقل"
	msgMoveUsage    = "❌ الصيغة: ID ثم اسم المجلد"
	msgFileDeleted  = "🗑️ تم حذف الملف"
	msgImageDeleted = "🗑️ تم حذف الصورة"
	msgNoFiles      = "لا توجد ملفات"
	msgNoImages     = "لا توجد صور"
	msgNotFound     = "❌ غير موجود"
	msgInvalidID    = "❌ معرف غير صالح"

	msgFileSaved  = "📁 تم حفظ الملف"
	msgImageSaved = "🖼️ تم حفظ الصورة"

	msgReportMailed     = "📧 تم إرسال التقرير إلى الإيميل"
	msgReportMailFailed = "❌ فشل إرسال التقرير"

	msgFailure = "❌ حدث خطأ، حاول مرة أخرى"
)

const reportSubject = "📊 التقرير اليومي - Telegram Manager Bot"
