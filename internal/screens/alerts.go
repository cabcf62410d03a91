package screens

// Заголовки и тексты уведомлений. Продуктовая локализация - турецкая.
const (
	titleError   = "Hata"
	titleWarning = "Uyarı"
	titleSuccess = "Başarılı"
	titleConfirm = "Onay"

	// Вход
	msgFillAllFields = "Lütfen tüm alanları doldurunuz."
	msgLoginFailed   = "Giriş başarısız. Lütfen bilgilerinizi kontrol ediniz."

	// Список учеников
	msgStudentsLoadFailed  = "Öğrenci listesi yüklenirken bir hata oluştu."
	titleDeleteStudent     = "Öğrenci Silme"
	msgStudentDeleted      = "Öğrenci başarıyla silindi."
	msgStudentDeleteFailed = "Öğrenci silinirken bir hata oluştu."

	// Формы ученика
	msgFillRequiredFields = "Lütfen zorunlu alanları doldurunuz."
	msgDebtNotNumeric     = "Borç miktarı sayısal bir değer olmalıdır."
	msgProgressNotNumeric = "Kitap ilerlemesi sayısal bir değer olmalıdır."
	msgBadDateFormat      = "Tarih formatı YYYY-MM-DD şeklinde olmalıdır."
	msgStudentAdded       = "Öğrenci başarıyla eklendi."
	msgStudentAddFailed   = "Öğrenci eklenirken bir hata oluştu."
	msgStudentUpdated     = "Öğrenci bilgileri güncellendi."
	msgStudentUpdateError = "Güncelleme sırasında bir hata oluştu."

	// Ödevler
	msgHomeworksLoadFailed  = "Ödevler yüklenirken bir hata oluştu."
	msgHomeworkToggled      = "Ödev durumu güncellendi."
	msgSessionExpired       = "Oturum süreniz dolmuş olabilir. Lütfen tekrar giriş yapın."
	msgHomeworkToggleFailed = "Ödev durumu güncellenirken bir hata oluştu."
	msgHomeworkDeleteAsk    = "Bu ödevi silmek istediğinize emin misiniz?"
	msgHomeworkDeleteFailed = "Ödev silinirken bir hata oluştu."
	msgHomeworkAdded        = "Ödev başarıyla eklendi."
	msgHomeworkAddFailed    = "Ödev eklenirken bir hata oluştu."
	msgHomeworkUpdateFailed = "Ödev güncellenirken bir hata oluştu."

	// Пустой список заданий
	msgNoHomeworkHint = "Öğrenciye yeni ödev eklemek için sağ üst köşedeki + butonuna tıklayın"
)
