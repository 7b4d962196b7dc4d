package normalizer

// simplifiedToTraditional is a context-free per-rune conversion table covering
// the Simplified forms that show up in FAQ and customer-support text. The
// canonical indexed script is Traditional; runes absent from the table (shared
// forms, Traditional input, non-Chinese text) pass through unchanged.
// Genuinely ambiguous one-to-many simplifications (干, 后, 只, ...) are left
// out rather than guessed.
var simplifiedToTraditional = map[rune]rune{
	'爱': '愛', '办': '辦', '帮': '幫', '备': '備', '笔': '筆',
	'边': '邊', '变': '變', '标': '標', '别': '別', '补': '補',
	'产': '產', '长': '長', '厂': '廠', '车': '車', '称': '稱',
	'处': '處', '传': '傳', '创': '創', '词': '詞', '从': '從',
	'错': '錯', '达': '達', '带': '帶', '单': '單', '当': '當',
	'档': '檔', '导': '導', '删': '刪', '点': '點', '电': '電',
	'订': '訂', '动': '動', '断': '斷', '对': '對', '队': '隊',
	'发': '發', '费': '費', '风': '風', '个': '個', '给': '給',
	'关': '關', '观': '觀', '广': '廣', '国': '國', '过': '過',
	'还': '還', '号': '號', '华': '華', '话': '話', '环': '環',
	'汇': '匯', '会': '會', '机': '機', '积': '積', '级': '級',
	'记': '記', '继': '繼', '价': '價', '间': '間', '简': '簡',
	'见': '見', '将': '將', '讲': '講', '节': '節', '结': '結',
	'进': '進', '经': '經', '举': '舉', '据': '據', '开': '開',
	'块': '塊', '宽': '寬', '况': '況', '来': '來', '离': '離',
	'历': '歷', '联': '聯', '连': '連', '两': '兩', '辆': '輛',
	'录': '錄', '虑': '慮', '马': '馬', '买': '買', '卖': '賣',
	'门': '門', '们': '們', '难': '難', '拟': '擬', '钮': '鈕',
	'盘': '盤', '凭': '憑', '启': '啟', '气': '氣', '钱': '錢',
	'确': '確', '让': '讓', '认': '認', '软': '軟', '设': '設',
	'时': '時', '实': '實', '识': '識', '试': '試', '输': '輸',
	'属': '屬', '数': '數', '双': '雙', '说': '說', '诉': '訴',
	'锁': '鎖', '态': '態', '体': '體', '条': '條', '听': '聽',
	'图': '圖', '团': '團', '网': '網', '为': '為', '伪': '偽',
	'问': '問', '无': '無', '误': '誤', '统': '統', '线': '線',
	'详': '詳', '销': '銷', '协': '協', '写': '寫', '谢': '謝',
	'兴': '興', '选': '選', '学': '學', '讯': '訊', '验': '驗',
	'样': '樣', '页': '頁', '业': '業', '亿': '億', '艺': '藝',
	'议': '議', '邮': '郵', '于': '於', '语': '語', '预': '預',
	'员': '員', '远': '遠', '约': '約', '云': '雲', '运': '運',
	'载': '載', '则': '則', '账': '帳', '帐': '帳', '张': '張',
	'这': '這', '证': '證', '质': '質', '钟': '鐘', '种': '種',
	'众': '眾', '转': '轉', '状': '狀', '准': '準', '资': '資',
	'总': '總', '组': '組', '码': '碼', '户': '戶', '几': '幾',
	'计': '計', '讨': '討', '论': '論', '访': '訪', '请': '請',
	'读': '讀', '购': '購', '贵': '貴', '贝': '貝', '败': '敗',
	'货': '貨', '银': '銀', '键': '鍵', '镜': '鏡', '闭': '閉',
	'闻': '聞', '阅': '閱', '题': '題', '顺': '順', '须': '須',
	'顾': '顧', '频': '頻', '颜': '顏', '饭': '飯', '馈': '饋',
	'么': '麼', '义': '義', '乐': '樂', '习': '習', '书': '書',
	'吗': '嗎', '啰': '囉', '陆': '陸', '册': '冊', '范': '範',
	'围': '圍', '应': '應', '该': '該', '寻': '尋',
}
