package script

var letters = []Letter{
	{"𑀅", "अ", "a"},
	{"𑀆", "आ", "ā"},
	{"𑀇", "इ", "i"},
	{"𑀈", "ई", "ī"},
	{"𑀉", "उ", "u"},
	{"𑀊", "ऊ", "ū"},
	{"𑀋", "ऋ", "ṛ"},
	{"𑀏", "ए", "e"},
	{"𑀑", "ऐ", "ai"},
	{"𑀒", "ओ", "o"},
	{"𑀔", "औ", "au"},
	{"𑀓", "क", "ka"},
	{"𑀔", "ख", "kha"},
	{"𑀕", "ग", "ga"},
	{"𑀖", "घ", "gha"},
	{"𑀗", "ङ", "ṅa"},
	{"𑀘", "च", "ca"},
	{"𑀙", "छ", "cha"},
	{"𑀚", "ज", "ja"},
	{"𑀛", "झ", "jha"},
	{"𑀜", "ञ", "ña"},
	{"𑀝", "ट", "ṭa"},
	{"𑀞", "ठ", "ṭha"},
	{"𑀟", "ड", "ḍa"},
	{"𑀠", "ढ", "ḍha"},
	{"𑀡", "ण", "ṇa"},
	{"𑀢", "त", "ta"},
	{"𑀣", "थ", "tha"},
	{"𑀤", "द", "da"},
	{"𑀥", "ध", "dha"},
	{"𑀦", "न", "na"},
	{"𑀧", "प", "pa"},
	{"𑀨", "फ", "pha"},
	{"𑀩", "ब", "ba"},
	{"𑀪", "भ", "bha"},
	{"𑀫", "म", "ma"},
	{"𑀬", "य", "ya"},
	{"𑀭", "र", "ra"},
	{"𑀮", "ल", "la"},
	{"𑀯", "व", "va"},
	{"𑀰", "श", "śa"},
	{"𑀱", "ष", "ṣa"},
	{"𑀲", "स", "sa"},
	{"𑀳", "ह", "ha"},
	{"𑀴", "ळ", "ḷa"},
}

var vocabulary = []VocabularyEntry{
	{"सेब", "𑀲𑁂𑀩", "fruits"},
	{"आम", "𑀆𑀫", "fruits"},
	{"केला", "𑀓𑁂𑀮𑀅", "fruits"},
	{"आलू", "𑀆𑀮𑁂𑀉", "vegetables"},
	{"मटर", "𑀫𑀢𑀭", "vegetables"},
	{"दिल्ली", "𑀤𑀺𑀮𑀺", "cities"},
	{"मुम्बई", "𑀫𑀼𑀫𑁆𑀩𑀈", "cities"},
	{"कोलकाता", "𑀓𑁂𑀮𑀓𑀢", "cities"},
	{"चेन्नई", "𑀘𑁂𑀦𑀦𑀈", "cities"},
	{"गर्मी", "𑀕𑀭𑁆𑀫𑀺", "seasons"},
	{"सर्दी", "𑀲𑀭𑁆𑀤𑀺", "seasons"},
	{"बसंत", "𑀩𑀲𑀦𑀢", "seasons"},
	{"पतझड़", "𑀧𑀢𑁆𑀚𑀡𑀽", "seasons"},
	{"गुलाब", "𑀕𑀼𑀮𑀅𑀩", "flowers"},
	{"कमल", "𑀓𑀫𑀮", "flowers"},
	{"नीम", "𑀦𑀺𑀫", "trees"},
	{"बरगद", "𑀩𑀭𑀕𑀤", "trees"},
	{"रोटी", "𑀭𑁂𑀢𑀺", "food"},
	{"चावल", "𑀘𑀯𑀮", "food"},
}
