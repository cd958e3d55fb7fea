package geo

// stateCapitals mapeia UF para a coordenada da capital.
var stateCapitals = map[string]Point{
	"AC": {Lat: -9.9754, Lng: -67.8249},
	"AL": {Lat: -9.6498, Lng: -35.7089},
	"AP": {Lat: 0.0349, Lng: -51.0694},
	"AM": {Lat: -3.1190, Lng: -60.0217},
	"BA": {Lat: -12.9714, Lng: -38.5014},
	"CE": {Lat: -3.7319, Lng: -38.5267},
	"DF": {Lat: -15.7942, Lng: -47.8825},
	"ES": {Lat: -20.3155, Lng: -40.3128},
	"GO": {Lat: -16.6869, Lng: -49.2648},
	"MA": {Lat: -2.5391, Lng: -44.2829},
	"MT": {Lat: -15.6014, Lng: -56.0979},
	"MS": {Lat: -20.4697, Lng: -54.6201},
	"MG": {Lat: -19.9167, Lng: -43.9345},
	"PA": {Lat: -1.4558, Lng: -48.4902},
	"PB": {Lat: -7.1195, Lng: -34.8450},
	"PR": {Lat: -25.4284, Lng: -49.2733},
	"PE": {Lat: -8.0476, Lng: -34.8770},
	"PI": {Lat: -5.0892, Lng: -42.8019},
	"RJ": {Lat: -22.9068, Lng: -43.1729},
	"RN": {Lat: -5.7945, Lng: -35.2110},
	"RS": {Lat: -30.0346, Lng: -51.2177},
	"RO": {Lat: -8.7612, Lng: -63.9004},
	"RR": {Lat: 2.8235, Lng: -60.6758},
	"SC": {Lat: -27.5954, Lng: -48.5480},
	"SP": {Lat: -23.5505, Lng: -46.6333},
	"SE": {Lat: -10.9472, Lng: -37.0731},
	"TO": {Lat: -10.2400, Lng: -48.3558},
}

// cityCoordinates é a lista curada de municípios brasileiros com coordenada
// conhecida (capitais e cidades de maior porte). Nome em minúsculas.
var cityCoordinates = map[string]Point{
	// capitais
	"rio branco":     {Lat: -9.9754, Lng: -67.8249},
	"maceió":         {Lat: -9.6498, Lng: -35.7089},
	"macapá":         {Lat: 0.0349, Lng: -51.0694},
	"manaus":         {Lat: -3.1190, Lng: -60.0217},
	"salvador":       {Lat: -12.9714, Lng: -38.5014},
	"fortaleza":      {Lat: -3.7319, Lng: -38.5267},
	"brasília":       {Lat: -15.7942, Lng: -47.8825},
	"vitória":        {Lat: -20.3155, Lng: -40.3128},
	"goiânia":        {Lat: -16.6869, Lng: -49.2648},
	"são luís":       {Lat: -2.5391, Lng: -44.2829},
	"cuiabá":         {Lat: -15.6014, Lng: -56.0979},
	"campo grande":   {Lat: -20.4697, Lng: -54.6201},
	"belo horizonte": {Lat: -19.9167, Lng: -43.9345},
	"belém":          {Lat: -1.4558, Lng: -48.4902},
	"joão pessoa":    {Lat: -7.1195, Lng: -34.8450},
	"curitiba":       {Lat: -25.4284, Lng: -49.2733},
	"recife":         {Lat: -8.0476, Lng: -34.8770},
	"teresina":       {Lat: -5.0892, Lng: -42.8019},
	"rio de janeiro": {Lat: -22.9068, Lng: -43.1729},
	"natal":          {Lat: -5.7945, Lng: -35.2110},
	"porto alegre":   {Lat: -30.0346, Lng: -51.2177},
	"porto velho":    {Lat: -8.7612, Lng: -63.9004},
	"boa vista":      {Lat: 2.8235, Lng: -60.6758},
	"florianópolis":  {Lat: -27.5954, Lng: -48.5480},
	"são paulo":      {Lat: -23.5505, Lng: -46.6333},
	"aracaju":        {Lat: -10.9472, Lng: -37.0731},
	"palmas":         {Lat: -10.2400, Lng: -48.3558},

	// São Paulo
	"guarulhos":             {Lat: -23.4543, Lng: -46.5337},
	"campinas":              {Lat: -22.9099, Lng: -47.0626},
	"são bernardo do campo": {Lat: -23.6914, Lng: -46.5646},
	"santo andré":           {Lat: -23.6737, Lng: -46.5432},
	"osasco":                {Lat: -23.5329, Lng: -46.7916},
	"são josé dos campos":   {Lat: -23.2237, Lng: -45.9009},
	"ribeirão preto":        {Lat: -21.1775, Lng: -47.8103},
	"sorocaba":              {Lat: -23.5015, Lng: -47.4526},
	"santos":                {Lat: -23.9608, Lng: -46.3336},
	"mauá":                  {Lat: -23.6677, Lng: -46.4613},
	"são josé do rio preto": {Lat: -20.8113, Lng: -49.3758},
	"mogi das cruzes":       {Lat: -23.5208, Lng: -46.1854},
	"diadema":               {Lat: -23.6813, Lng: -46.6205},
	"jundiaí":               {Lat: -23.1857, Lng: -46.8978},
	"piracicaba":            {Lat: -22.7253, Lng: -47.6492},
	"carapicuíba":           {Lat: -23.5235, Lng: -46.8407},
	"bauru":                 {Lat: -22.3145, Lng: -49.0587},
	"itaquaquecetuba":       {Lat: -23.4868, Lng: -46.3485},
	"são vicente":           {Lat: -23.9633, Lng: -46.3922},
	"franca":                {Lat: -20.5386, Lng: -47.4008},
	"guarujá":               {Lat: -23.9935, Lng: -46.2564},
	"taubaté":               {Lat: -23.0264, Lng: -45.5553},
	"praia grande":          {Lat: -24.0058, Lng: -46.4028},
	"limeira":               {Lat: -22.5641, Lng: -47.4014},
	"suzano":                {Lat: -23.5426, Lng: -46.3108},
	"taboão da serra":       {Lat: -23.6019, Lng: -46.7526},
	"sumaré":                {Lat: -22.8219, Lng: -47.2668},
	"barueri":               {Lat: -23.5106, Lng: -46.8761},
	"embu das artes":        {Lat: -23.6489, Lng: -46.8522},
	"são carlos":            {Lat: -22.0174, Lng: -47.8908},
	"marília":               {Lat: -22.2171, Lng: -49.9501},
	"indaiatuba":            {Lat: -23.0904, Lng: -47.2181},
	"cotia":                 {Lat: -23.6022, Lng: -46.9189},
	"americana":             {Lat: -22.7374, Lng: -47.3331},
	"jacareí":               {Lat: -23.2983, Lng: -45.9658},
	"araraquara":            {Lat: -21.7845, Lng: -48.1780},
	"presidente prudente":   {Lat: -22.1256, Lng: -51.3895},
	"hortolândia":           {Lat: -22.8583, Lng: -47.2200},
	"araçatuba":             {Lat: -21.2089, Lng: -50.4328},
	"rio claro":             {Lat: -22.4065, Lng: -47.5613},
	"cubatão":               {Lat: -23.8953, Lng: -46.4256},
	"itu":                   {Lat: -23.2642, Lng: -47.2997},
	"bragança paulista":     {Lat: -22.9527, Lng: -46.5419},
	"pindamonhangaba":       {Lat: -22.9246, Lng: -45.4613},
	"são caetano do sul":    {Lat: -23.6229, Lng: -46.5548},
	"ferraz de vasconcelos": {Lat: -23.5411, Lng: -46.3689},
	"santa bárbara d'oeste": {Lat: -22.7553, Lng: -47.4143},

	// Rio de Janeiro
	"são gonçalo":            {Lat: -22.8268, Lng: -43.0634},
	"duque de caxias":        {Lat: -22.7858, Lng: -43.3054},
	"nova iguaçu":            {Lat: -22.7592, Lng: -43.4511},
	"niterói":                {Lat: -22.8832, Lng: -43.1034},
	"campos dos goytacazes":  {Lat: -21.7622, Lng: -41.3181},
	"belford roxo":           {Lat: -22.7641, Lng: -43.3992},
	"são joão de meriti":     {Lat: -22.8039, Lng: -43.3722},
	"petrópolis":             {Lat: -22.5112, Lng: -43.1779},
	"volta redonda":          {Lat: -22.5202, Lng: -44.0996},
	"magé":                   {Lat: -22.6527, Lng: -43.0412},
	"macaé":                  {Lat: -22.3708, Lng: -41.7869},
	"itaboraí":               {Lat: -22.7440, Lng: -42.8596},
	"cabo frio":              {Lat: -22.8894, Lng: -42.0286},
	"angra dos reis":         {Lat: -23.0067, Lng: -44.3181},
	"nova friburgo":          {Lat: -22.2819, Lng: -42.5311},
	"teresópolis":            {Lat: -22.4165, Lng: -42.9752},
	"mesquita":               {Lat: -22.7831, Lng: -43.4296},
	"barra mansa":            {Lat: -22.5481, Lng: -44.1752},
	"queimados":              {Lat: -22.7160, Lng: -43.5550},

	// Minas Gerais
	"uberlândia":            {Lat: -18.9113, Lng: -48.2622},
	"contagem":              {Lat: -19.9320, Lng: -44.0539},
	"juiz de fora":          {Lat: -21.7642, Lng: -43.3503},
	"betim":                 {Lat: -19.9681, Lng: -44.1987},
	"montes claros":         {Lat: -16.7286, Lng: -43.8582},
	"ribeirão das neves":    {Lat: -19.7672, Lng: -44.0869},
	"uberaba":               {Lat: -19.7472, Lng: -47.9381},
	"governador valadares":  {Lat: -18.8545, Lng: -41.9555},
	"ipatinga":              {Lat: -19.4703, Lng: -42.5476},
	"sete lagoas":           {Lat: -19.4569, Lng: -44.2413},
	"divinópolis":           {Lat: -20.1446, Lng: -44.8912},
	"santa luzia":           {Lat: -19.7697, Lng: -43.8514},
	"ibirité":               {Lat: -20.0252, Lng: -44.0569},
	"poços de caldas":       {Lat: -21.7800, Lng: -46.5692},
	"patos de minas":        {Lat: -18.5789, Lng: -46.5183},
	"pouso alegre":          {Lat: -22.2266, Lng: -45.9389},
	"teófilo otoni":         {Lat: -17.8595, Lng: -41.5087},
	"barbacena":             {Lat: -21.2264, Lng: -43.7742},
	"varginha":              {Lat: -21.5556, Lng: -45.4364},
	"conselheiro lafaiete":  {Lat: -20.6600, Lng: -43.7862},
	"araguari":              {Lat: -18.6456, Lng: -48.1934},

	// Bahia
	"feira de santana":     {Lat: -12.2664, Lng: -38.9663},
	"vitória da conquista": {Lat: -14.8615, Lng: -40.8442},
	"camaçari":             {Lat: -12.6996, Lng: -38.3263},
	"juazeiro":             {Lat: -9.4111, Lng: -40.4986},
	"itabuna":              {Lat: -14.7876, Lng: -39.2781},
	"lauro de freitas":     {Lat: -12.8978, Lng: -38.3270},
	"ilhéus":               {Lat: -14.7889, Lng: -39.0494},
	"jequié":               {Lat: -13.8578, Lng: -40.0831},
	"teixeira de freitas":  {Lat: -17.5399, Lng: -39.7408},
	"barreiras":            {Lat: -12.1436, Lng: -44.9967},
	"alagoinhas":           {Lat: -12.1355, Lng: -38.4193},
	"porto seguro":         {Lat: -16.4435, Lng: -39.0643},
	"simões filho":         {Lat: -12.7866, Lng: -38.4029},
	"paulo afonso":         {Lat: -9.3984, Lng: -38.2216},
	"eunápolis":            {Lat: -16.3717, Lng: -39.5808},

	// Paraná
	"londrina":             {Lat: -23.3045, Lng: -51.1696},
	"maringá":              {Lat: -23.4210, Lng: -51.9331},
	"ponta grossa":         {Lat: -25.0945, Lng: -50.1633},
	"cascavel":             {Lat: -24.9555, Lng: -53.4552},
	"são josé dos pinhais": {Lat: -25.5313, Lng: -49.2034},
	"foz do iguaçu":        {Lat: -25.5478, Lng: -54.5882},
	"colombo":              {Lat: -25.2925, Lng: -49.2262},
	"guarapuava":           {Lat: -25.3907, Lng: -51.4628},
	"paranaguá":            {Lat: -25.5161, Lng: -48.5225},
	"apucarana":            {Lat: -23.5508, Lng: -51.4607},
	"toledo":               {Lat: -24.7136, Lng: -53.7433},
	"araucária":            {Lat: -25.5928, Lng: -49.4103},
	"campo largo":          {Lat: -25.4594, Lng: -49.5283},

	// Rio Grande do Sul
	"caxias do sul":      {Lat: -29.1634, Lng: -51.1797},
	"pelotas":            {Lat: -31.7654, Lng: -52.3376},
	"canoas":             {Lat: -29.9177, Lng: -51.1844},
	"santa maria":        {Lat: -29.6842, Lng: -53.8069},
	"gravataí":           {Lat: -29.9413, Lng: -50.9928},
	"viamão":             {Lat: -30.0819, Lng: -51.0233},
	"novo hamburgo":      {Lat: -29.6875, Lng: -51.1328},
	"são leopoldo":       {Lat: -29.7544, Lng: -51.1498},
	"rio grande":         {Lat: -32.0350, Lng: -52.0986},
	"alvorada":           {Lat: -29.9914, Lng: -51.0809},
	"passo fundo":        {Lat: -28.2620, Lng: -52.4069},
	"sapucaia do sul":    {Lat: -29.8276, Lng: -51.1454},
	"uruguaiana":         {Lat: -29.7614, Lng: -57.0853},
	"santa cruz do sul":  {Lat: -29.7175, Lng: -52.4264},
	"cachoeirinha":       {Lat: -29.9511, Lng: -51.0944},
	"bagé":               {Lat: -31.3297, Lng: -54.1069},
	"bento gonçalves":    {Lat: -29.1662, Lng: -51.5165},
	"erechim":            {Lat: -27.6364, Lng: -52.2697},

	// Santa Catarina
	"joinville":          {Lat: -26.3045, Lng: -48.8487},
	"blumenau":           {Lat: -26.9194, Lng: -49.0661},
	"são josé":           {Lat: -27.6136, Lng: -48.6366},
	"criciúma":           {Lat: -28.6775, Lng: -49.3697},
	"chapecó":            {Lat: -27.1004, Lng: -52.6152},
	"itajaí":             {Lat: -26.9078, Lng: -48.6619},
	"lages":              {Lat: -27.8159, Lng: -50.3259},
	"jaraguá do sul":     {Lat: -26.4851, Lng: -49.0713},
	"palhoça":            {Lat: -27.6455, Lng: -48.6700},
	"balneário camboriú": {Lat: -26.9926, Lng: -48.6352},
	"brusque":            {Lat: -27.0977, Lng: -48.9107},
	"tubarão":            {Lat: -28.4713, Lng: -49.0144},
	"são bento do sul":   {Lat: -26.2503, Lng: -49.3786},

	// Pernambuco
	"jaboatão dos guararapes": {Lat: -8.1130, Lng: -35.0147},
	"olinda":                  {Lat: -7.9936, Lng: -34.8442},
	"caruaru":                 {Lat: -8.2840, Lng: -35.9703},
	"petrolina":               {Lat: -9.3891, Lng: -40.5030},
	"paulista":                {Lat: -7.9407, Lng: -34.8728},
	"cabo de santo agostinho": {Lat: -8.2846, Lng: -35.0353},
	"camaragibe":              {Lat: -8.0215, Lng: -34.9810},
	"garanhuns":               {Lat: -8.8829, Lng: -36.4966},
	"vitória de santo antão":  {Lat: -8.1186, Lng: -35.2917},
	"igarassu":                {Lat: -7.8342, Lng: -34.9064},

	// Ceará
	"caucaia":           {Lat: -3.7361, Lng: -38.6531},
	"juazeiro do norte": {Lat: -7.2130, Lng: -39.3153},
	"maracanaú":         {Lat: -3.8767, Lng: -38.6256},
	"sobral":            {Lat: -3.6891, Lng: -40.3482},
	"crato":             {Lat: -7.2343, Lng: -39.4095},
	"itapipoca":         {Lat: -3.4944, Lng: -39.5786},
	"maranguape":        {Lat: -3.8903, Lng: -38.6862},
	"iguatu":            {Lat: -6.3628, Lng: -39.2986},

	// Pará
	"ananindeua":  {Lat: -1.3658, Lng: -48.3721},
	"santarém":    {Lat: -2.4426, Lng: -54.7083},
	"marabá":      {Lat: -5.3686, Lng: -49.1178},
	"parauapebas": {Lat: -6.0675, Lng: -49.9022},
	"castanhal":   {Lat: -1.2964, Lng: -47.9217},
	"abaetetuba":  {Lat: -1.7218, Lng: -48.8788},
	"cametá":      {Lat: -2.2441, Lng: -49.4957},
	"bragança":    {Lat: -1.0536, Lng: -46.7656},
	"altamira":    {Lat: -3.2033, Lng: -52.2064},

	// Maranhão
	"imperatriz":          {Lat: -5.5185, Lng: -47.4777},
	"são josé de ribamar": {Lat: -2.5619, Lng: -44.0540},
	"timon":               {Lat: -5.0949, Lng: -42.8367},
	"caxias":              {Lat: -4.8589, Lng: -43.3558},
	"codó":                {Lat: -4.4553, Lng: -43.8856},
	"paço do lumiar":      {Lat: -2.5317, Lng: -44.1078},

	// Goiás
	"aparecida de goiânia":  {Lat: -16.8198, Lng: -49.2469},
	"anápolis":              {Lat: -16.3281, Lng: -48.9531},
	"rio verde":             {Lat: -17.7923, Lng: -50.9192},
	"luziânia":              {Lat: -16.2525, Lng: -47.9503},
	"águas lindas de goiás": {Lat: -15.7617, Lng: -48.2816},
	"trindade":              {Lat: -16.6517, Lng: -49.4927},
	"formosa":               {Lat: -15.5372, Lng: -47.3342},
	"novo gama":             {Lat: -16.0586, Lng: -48.0378},
	"senador canedo":        {Lat: -16.7084, Lng: -49.0914},
	"catalão":               {Lat: -18.1658, Lng: -47.9464},
	"itumbiara":             {Lat: -18.4192, Lng: -49.2150},

	// Mato Grosso
	"várzea grande":    {Lat: -15.6467, Lng: -56.1326},
	"rondonópolis":     {Lat: -16.4673, Lng: -54.6372},
	"sinop":            {Lat: -11.8642, Lng: -55.5025},
	"cáceres":          {Lat: -16.0764, Lng: -57.6818},
	"tangará da serra": {Lat: -14.6229, Lng: -57.4933},

	// Mato Grosso do Sul
	"dourados":     {Lat: -22.2211, Lng: -54.8056},
	"três lagoas":  {Lat: -20.7511, Lng: -51.6783},
	"corumbá":      {Lat: -19.0078, Lng: -57.6547},

	// Espírito Santo
	"vila velha":             {Lat: -20.3297, Lng: -40.2925},
	"serra":                  {Lat: -20.1211, Lng: -40.3074},
	"cariacica":              {Lat: -20.2632, Lng: -40.4165},
	"cachoeiro de itapemirim": {Lat: -20.8489, Lng: -41.1128},
	"linhares":               {Lat: -19.3946, Lng: -40.0643},
	"colatina":               {Lat: -19.5393, Lng: -40.6305},
	"guarapari":              {Lat: -20.6667, Lng: -40.5075},
	"são mateus":             {Lat: -18.7213, Lng: -39.8590},

	// Alagoas
	"arapiraca":           {Lat: -9.7515, Lng: -36.6612},
	"palmeira dos índios": {Lat: -9.4062, Lng: -36.6278},
	"rio largo":           {Lat: -9.4778, Lng: -35.8533},

	// Sergipe
	"nossa senhora do socorro": {Lat: -10.8550, Lng: -37.1264},
	"lagarto":                  {Lat: -10.9136, Lng: -37.6689},
	"itabaiana":                {Lat: -10.6850, Lng: -37.4256},
	"estância":                 {Lat: -11.2683, Lng: -37.4383},

	// Paraíba
	"campina grande": {Lat: -7.2306, Lng: -35.8811},
	"santa rita":     {Lat: -7.1136, Lng: -34.9781},
	"patos":          {Lat: -7.0246, Lng: -37.2800},
	"bayeux":         {Lat: -7.1250, Lng: -34.9322},
	"cajazeiras":     {Lat: -6.8897, Lng: -38.5578},
	"sousa":          {Lat: -6.7592, Lng: -38.2281},

	// Rio Grande do Norte
	"mossoró":                 {Lat: -5.1875, Lng: -37.3444},
	"parnamirim":              {Lat: -5.9156, Lng: -35.2628},
	"são gonçalo do amarante": {Lat: -5.7928, Lng: -35.3289},
	"caicó":                   {Lat: -6.4586, Lng: -37.0978},

	// Piauí
	"parnaíba": {Lat: -2.9038, Lng: -41.7767},
	"picos":    {Lat: -7.0769, Lng: -41.4669},
	"piripiri": {Lat: -4.2729, Lng: -41.7770},

	// Amazonas
	"parintins":   {Lat: -2.6283, Lng: -56.7358},
	"itacoatiara": {Lat: -3.1431, Lng: -58.4441},
	"manacapuru":  {Lat: -3.2997, Lng: -60.6206},

	// Rondônia
	"ji-paraná": {Lat: -10.8853, Lng: -61.9517},
	"ariquemes": {Lat: -9.9083, Lng: -63.0331},
	"vilhena":   {Lat: -12.7406, Lng: -60.1458},
	"cacoal":    {Lat: -11.4386, Lng: -61.4472},

	// Tocantins
	"araguaína": {Lat: -7.1911, Lng: -48.2072},
	"gurupi":    {Lat: -11.7292, Lng: -49.0686},

	// Acre
	"cruzeiro do sul": {Lat: -7.6278, Lng: -72.6703},

	// Amapá
	"santana": {Lat: -0.0583, Lng: -51.1817},
}
