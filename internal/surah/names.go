package surah

// Names is the canonical surah table, ordered by number.
var Names = [Count]Name{
	{Number: 1, Arabic: "الفاتحة", English: "Al-Fatiha"},
	{Number: 2, Arabic: "البقرة", English: "Al-Baqarah"},
	{Number: 3, Arabic: "آل عمران", English: "Aal-E-Imran"},
	{Number: 4, Arabic: "النساء", English: "An-Nisa"},
	{Number: 5, Arabic: "المائدة", English: "Al-Ma'idah"},
	{Number: 6, Arabic: "الأنعام", English: "Al-An'am"},
	{Number: 7, Arabic: "الأعراف", English: "Al-A'raf"},
	{Number: 8, Arabic: "الأنفال", English: "Al-Anfal"},
	{Number: 9, Arabic: "التوبة", English: "At-Tawbah"},
	{Number: 10, Arabic: "يونس", English: "Yunus"},
	{Number: 11, Arabic: "هود", English: "Hud"},
	{Number: 12, Arabic: "يوسف", English: "Yusuf"},
	{Number: 13, Arabic: "الرعد", English: "Ar-Ra'd"},
	{Number: 14, Arabic: "إبراهيم", English: "Ibrahim"},
	{Number: 15, Arabic: "الحجر", English: "Al-Hijr"},
	{Number: 16, Arabic: "النحل", English: "An-Nahl"},
	{Number: 17, Arabic: "الإسراء", English: "Al-Isra"},
	{Number: 18, Arabic: "الكهف", English: "Al-Kahf"},
	{Number: 19, Arabic: "مريم", English: "Maryam"},
	{Number: 20, Arabic: "طه", English: "Ta-Ha"},
	{Number: 21, Arabic: "الأنبياء", English: "Al-Anbiya"},
	{Number: 22, Arabic: "الحج", English: "Al-Hajj"},
	{Number: 23, Arabic: "المؤمنون", English: "Al-Mu'minun"},
	{Number: 24, Arabic: "النور", English: "An-Nur"},
	{Number: 25, Arabic: "الفرقان", English: "Al-Furqan"},
	{Number: 26, Arabic: "الشعراء", English: "Ash-Shu'ara"},
	{Number: 27, Arabic: "النمل", English: "An-Naml"},
	{Number: 28, Arabic: "القصص", English: "Al-Qasas"},
	{Number: 29, Arabic: "العنكبوت", English: "Al-Ankabut"},
	{Number: 30, Arabic: "الروم", English: "Ar-Rum"},
	{Number: 31, Arabic: "لقمان", English: "Luqman"},
	{Number: 32, Arabic: "السجدة", English: "As-Sajdah"},
	{Number: 33, Arabic: "الأحزاب", English: "Al-Ahzab"},
	{Number: 34, Arabic: "سبأ", English: "Saba"},
	{Number: 35, Arabic: "فاطر", English: "Fatir"},
	{Number: 36, Arabic: "يس", English: "Ya-Sin"},
	{Number: 37, Arabic: "الصافات", English: "As-Saffat"},
	{Number: 38, Arabic: "ص", English: "Sad"},
	{Number: 39, Arabic: "الزمر", English: "Az-Zumar"},
	{Number: 40, Arabic: "غافر", English: "Ghafir"},
	{Number: 41, Arabic: "فصلت", English: "Fussilat"},
	{Number: 42, Arabic: "الشورى", English: "Ash-Shura"},
	{Number: 43, Arabic: "الزخرف", English: "Az-Zukhruf"},
	{Number: 44, Arabic: "الدخان", English: "Ad-Dukhan"},
	{Number: 45, Arabic: "الجاثية", English: "Al-Jathiyah"},
	{Number: 46, Arabic: "الأحقاف", English: "Al-Ahqaf"},
	{Number: 47, Arabic: "محمد", English: "Muhammad"},
	{Number: 48, Arabic: "الفتح", English: "Al-Fath"},
	{Number: 49, Arabic: "الحجرات", English: "Al-Hujurat"},
	{Number: 50, Arabic: "ق", English: "Qaf"},
	{Number: 51, Arabic: "الذاريات", English: "Adh-Dhariyat"},
	{Number: 52, Arabic: "الطور", English: "At-Tur"},
	{Number: 53, Arabic: "النجم", English: "An-Najm"},
	{Number: 54, Arabic: "القمر", English: "Al-Qamar"},
	{Number: 55, Arabic: "الرحمن", English: "Ar-Rahman"},
	{Number: 56, Arabic: "الواقعة", English: "Al-Waqi'ah"},
	{Number: 57, Arabic: "الحديد", English: "Al-Hadid"},
	{Number: 58, Arabic: "المجادلة", English: "Al-Mujadilah"},
	{Number: 59, Arabic: "الحشر", English: "Al-Hashr"},
	{Number: 60, Arabic: "الممتحنة", English: "Al-Mumtahanah"},
	{Number: 61, Arabic: "الصف", English: "As-Saff"},
	{Number: 62, Arabic: "الجمعة", English: "Al-Jumu'ah"},
	{Number: 63, Arabic: "المنافقون", English: "Al-Munafiqun"},
	{Number: 64, Arabic: "التغابن", English: "At-Taghabun"},
	{Number: 65, Arabic: "الطلاق", English: "At-Talaq"},
	{Number: 66, Arabic: "التحريم", English: "At-Tahrim"},
	{Number: 67, Arabic: "الملك", English: "Al-Mulk"},
	{Number: 68, Arabic: "القلم", English: "Al-Qalam"},
	{Number: 69, Arabic: "الحاقة", English: "Al-Haqqah"},
	{Number: 70, Arabic: "المعارج", English: "Al-Ma'arij"},
	{Number: 71, Arabic: "نوح", English: "Nuh"},
	{Number: 72, Arabic: "الجن", English: "Al-Jinn"},
	{Number: 73, Arabic: "المزمل", English: "Al-Muzzammil"},
	{Number: 74, Arabic: "المدثر", English: "Al-Muddaththir"},
	{Number: 75, Arabic: "القيامة", English: "Al-Qiyamah"},
	{Number: 76, Arabic: "الإنسان", English: "Al-Insan"},
	{Number: 77, Arabic: "المرسلات", English: "Al-Mursalat"},
	{Number: 78, Arabic: "النبأ", English: "An-Naba"},
	{Number: 79, Arabic: "النازعات", English: "An-Nazi'at"},
	{Number: 80, Arabic: "عبس", English: "Abasa"},
	{Number: 81, Arabic: "التكوير", English: "At-Takwir"},
	{Number: 82, Arabic: "الانفطار", English: "Al-Infitar"},
	{Number: 83, Arabic: "المطففين", English: "Al-Mutaffifin"},
	{Number: 84, Arabic: "الانشقاق", English: "Al-Inshiqaq"},
	{Number: 85, Arabic: "البروج", English: "Al-Buruj"},
	{Number: 86, Arabic: "الطارق", English: "At-Tariq"},
	{Number: 87, Arabic: "الأعلى", English: "Al-A'la"},
	{Number: 88, Arabic: "الغاشية", English: "Al-Ghashiyah"},
	{Number: 89, Arabic: "الفجر", English: "Al-Fajr"},
	{Number: 90, Arabic: "البلد", English: "Al-Balad"},
	{Number: 91, Arabic: "الشمس", English: "Ash-Shams"},
	{Number: 92, Arabic: "الليل", English: "Al-Layl"},
	{Number: 93, Arabic: "الضحى", English: "Ad-Duha"},
	{Number: 94, Arabic: "الشرح", English: "Ash-Sharh"},
	{Number: 95, Arabic: "التين", English: "At-Tin"},
	{Number: 96, Arabic: "العلق", English: "Al-Alaq"},
	{Number: 97, Arabic: "القدر", English: "Al-Qadr"},
	{Number: 98, Arabic: "البينة", English: "Al-Bayyinah"},
	{Number: 99, Arabic: "الزلزلة", English: "Az-Zalzalah"},
	{Number: 100, Arabic: "العاديات", English: "Al-Adiyat"},
	{Number: 101, Arabic: "القارعة", English: "Al-Qari'ah"},
	{Number: 102, Arabic: "التكاثر", English: "At-Takathur"},
	{Number: 103, Arabic: "العصر", English: "Al-Asr"},
	{Number: 104, Arabic: "الهمزة", English: "Al-Humazah"},
	{Number: 105, Arabic: "الفيل", English: "Al-Fil"},
	{Number: 106, Arabic: "قريش", English: "Quraysh"},
	{Number: 107, Arabic: "الماعون", English: "Al-Ma'un"},
	{Number: 108, Arabic: "الكوثر", English: "Al-Kawthar"},
	{Number: 109, Arabic: "الكافرون", English: "Al-Kafirun"},
	{Number: 110, Arabic: "النصر", English: "An-Nasr"},
	{Number: 111, Arabic: "المسد", English: "Al-Masad"},
	{Number: 112, Arabic: "الإخلاص", English: "Al-Ikhlas"},
	{Number: 113, Arabic: "الفلق", English: "Al-Falaq"},
	{Number: 114, Arabic: "الناس", English: "An-Nas"},
}
