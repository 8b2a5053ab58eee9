package badges

// Shield holds the simple-icons logo slug and brand color used for a
// technology on img.shields.io.
type Shield struct {
	Logo  string
	Color string
}

//nolint:gochecknoglobals // static lookup table
var shields = map[string]Shield{
	// Languages
	"JavaScript":  {Logo: "javascript", Color: "F7DF1E"},
	"TypeScript":  {Logo: "typescript", Color: "3178C6"},
	"Python":      {Logo: "python", Color: "3776AB"},
	"Java":        {Logo: "openjdk", Color: "ED8B00"},
	"C":           {Logo: "c", Color: "A8B9CC"},
	"C++":         {Logo: "cplusplus", Color: "00599C"},
	"C#":          {Logo: "csharp", Color: "239120"},
	"Go":          {Logo: "go", Color: "00ADD8"},
	"Rust":        {Logo: "rust", Color: "000000"},
	"Ruby":        {Logo: "ruby", Color: "CC342D"},
	"PHP":         {Logo: "php", Color: "777BB4"},
	"Swift":       {Logo: "swift", Color: "FA7343"},
	"Kotlin":      {Logo: "kotlin", Color: "7F52FF"},
	"Dart":        {Logo: "dart", Color: "0175C2"},
	"Scala":       {Logo: "scala", Color: "DC322F"},
	"R":           {Logo: "r", Color: "276DC3"},
	"Lua":         {Logo: "lua", Color: "2C2D72"},
	"Perl":        {Logo: "perl", Color: "39457E"},
	"Haskell":     {Logo: "haskell", Color: "5D4F85"},
	"Elixir":      {Logo: "elixir", Color: "4B275F"},
	"Clojure":     {Logo: "clojure", Color: "5881D8"},
	"Julia":       {Logo: "julia", Color: "9558B2"},
	"Objective-C": {Logo: "apple", Color: "000000"},
	"Assembly":    {Logo: "assembly", Color: "6E4C13"},
	"Solidity":    {Logo: "solidity", Color: "363636"},
	"MATLAB":      {Logo: "mathworks", Color: "0076A8"},
	"Bash":        {Logo: "gnubash", Color: "4EAA25"},
	"PowerShell":  {Logo: "powershell", Color: "5391FE"},

	// Frameworks & libraries
	"React":             {Logo: "react", Color: "61DAFB"},
	"Next.js":           {Logo: "nextdotjs", Color: "000000"},
	"Vue.js":            {Logo: "vuedotjs", Color: "4FC08D"},
	"Nuxt.js":           {Logo: "nuxtdotjs", Color: "00DC82"},
	"Angular":           {Logo: "angular", Color: "DD0031"},
	"Svelte":            {Logo: "svelte", Color: "FF3E00"},
	"Node.js":           {Logo: "nodedotjs", Color: "339933"},
	"Express":           {Logo: "express", Color: "000000"},
	"NestJS":            {Logo: "nestjs", Color: "E0234E"},
	"Django":            {Logo: "django", Color: "092E20"},
	"Flask":             {Logo: "flask", Color: "000000"},
	"FastAPI":           {Logo: "fastapi", Color: "009688"},
	"Spring":            {Logo: "spring", Color: "6DB33F"},
	"Rails":             {Logo: "rubyonrails", Color: "CC0000"},
	"Laravel":           {Logo: "laravel", Color: "FF2D20"},
	"ASP.NET":           {Logo: "dotnet", Color: "512BD4"},
	"Flutter":           {Logo: "flutter", Color: "02569B"},
	"React Native":      {Logo: "react", Color: "61DAFB"},
	"Electron":          {Logo: "electron", Color: "47848F"},
	"Tauri":             {Logo: "tauri", Color: "FFC131"},
	"Qt":                {Logo: "qt", Color: "41CD52"},
	"Remix":             {Logo: "remix", Color: "000000"},
	"Astro":             {Logo: "astro", Color: "FF5D01"},
	"Gatsby":            {Logo: "gatsby", Color: "663399"},
	"Hugo":              {Logo: "hugo", Color: "FF4088"},
	"Tailwind CSS":      {Logo: "tailwindcss", Color: "06B6D4"},
	"Bootstrap":         {Logo: "bootstrap", Color: "7952B3"},
	"Material UI":       {Logo: "mui", Color: "007FFF"},
	"Chakra UI":         {Logo: "chakraui", Color: "319795"},
	"Styled Components": {Logo: "styledcomponents", Color: "DB7093"},
	"Sass":              {Logo: "sass", Color: "CC6699"},
	"Redux":             {Logo: "redux", Color: "764ABC"},
	"GraphQL":           {Logo: "graphql", Color: "E10098"},
	"Apollo":            {Logo: "apollographql", Color: "311C87"},
	"tRPC":              {Logo: "trpc", Color: "2596BE"},
	"Prisma":            {Logo: "prisma", Color: "2D3748"},
	"Drizzle":           {Logo: "drizzle", Color: "C5F74F"},
	"Socket.io":         {Logo: "socketdotio", Color: "010101"},
	"Three.js":          {Logo: "threedotjs", Color: "000000"},
	"TensorFlow":        {Logo: "tensorflow", Color: "FF6F00"},
	"PyTorch":           {Logo: "pytorch", Color: "EE4C2C"},
	"Keras":             {Logo: "keras", Color: "D00000"},
	"OpenCV":            {Logo: "opencv", Color: "5C3EE8"},
	"Pandas":            {Logo: "pandas", Color: "150458"},
	"NumPy":             {Logo: "numpy", Color: "013243"},
	"Scikit-learn":      {Logo: "scikitlearn", Color: "F7931E"},

	// Tools & platforms
	"Git":            {Logo: "git", Color: "F05032"},
	"GitHub":         {Logo: "github", Color: "181717"},
	"GitLab":         {Logo: "gitlab", Color: "FC6D26"},
	"Bitbucket":      {Logo: "bitbucket", Color: "0052CC"},
	"Docker":         {Logo: "docker", Color: "2496ED"},
	"Kubernetes":     {Logo: "kubernetes", Color: "326CE5"},
	"AWS":            {Logo: "amazonaws", Color: "232F3E"},
	"Azure":          {Logo: "microsoftazure", Color: "0078D4"},
	"Google Cloud":   {Logo: "googlecloud", Color: "4285F4"},
	"Vercel":         {Logo: "vercel", Color: "000000"},
	"Netlify":        {Logo: "netlify", Color: "00C7B7"},
	"Heroku":         {Logo: "heroku", Color: "430098"},
	"DigitalOcean":   {Logo: "digitalocean", Color: "0080FF"},
	"Cloudflare":     {Logo: "cloudflare", Color: "F38020"},
	"Firebase":       {Logo: "firebase", Color: "FFCA28"},
	"Supabase":       {Logo: "supabase", Color: "3ECF8E"},
	"MongoDB":        {Logo: "mongodb", Color: "47A248"},
	"PostgreSQL":     {Logo: "postgresql", Color: "4169E1"},
	"MySQL":          {Logo: "mysql", Color: "4479A1"},
	"Redis":          {Logo: "redis", Color: "DC382D"},
	"SQLite":         {Logo: "sqlite", Color: "003B57"},
	"Elasticsearch":  {Logo: "elasticsearch", Color: "005571"},
	"Nginx":          {Logo: "nginx", Color: "009639"},
	"Apache":         {Logo: "apache", Color: "D22128"},
	"Linux":          {Logo: "linux", Color: "FCC624"},
	"Ubuntu":         {Logo: "ubuntu", Color: "E95420"},
	"Debian":         {Logo: "debian", Color: "A81D33"},
	"macOS":          {Logo: "apple", Color: "000000"},
	"Windows":        {Logo: "windows11", Color: "0078D4"},
	"VS Code":        {Logo: "visualstudiocode", Color: "007ACC"},
	"IntelliJ":       {Logo: "intellijidea", Color: "000000"},
	"Vim":            {Logo: "vim", Color: "019733"},
	"Neovim":         {Logo: "neovim", Color: "57A143"},
	"Figma":          {Logo: "figma", Color: "F24E1E"},
	"Adobe XD":       {Logo: "adobexd", Color: "FF61F6"},
	"Photoshop":      {Logo: "adobephotoshop", Color: "31A8FF"},
	"Illustrator":    {Logo: "adobeillustrator", Color: "FF9A00"},
	"Blender":        {Logo: "blender", Color: "E87D0D"},
	"Unity":          {Logo: "unity", Color: "000000"},
	"Unreal Engine":  {Logo: "unrealengine", Color: "0E1128"},
	"Postman":        {Logo: "postman", Color: "FF6C37"},
	"Insomnia":       {Logo: "insomnia", Color: "4000BF"},
	"Jest":           {Logo: "jest", Color: "C21325"},
	"Cypress":        {Logo: "cypress", Color: "17202C"},
	"Playwright":     {Logo: "playwright", Color: "2EAD33"},
	"Selenium":       {Logo: "selenium", Color: "43B02A"},
	"Jenkins":        {Logo: "jenkins", Color: "D24939"},
	"CircleCI":       {Logo: "circleci", Color: "343434"},
	"GitHub Actions": {Logo: "githubactions", Color: "2088FF"},
	"Terraform":      {Logo: "terraform", Color: "7B42BC"},
	"Ansible":        {Logo: "ansible", Color: "EE0000"},
	"Grafana":        {Logo: "grafana", Color: "F46800"},
	"Prometheus":     {Logo: "prometheus", Color: "E6522C"},
	"Datadog":        {Logo: "datadog", Color: "632CA6"},
	"Sentry":         {Logo: "sentry", Color: "362D59"},
	"Jira":           {Logo: "jira", Color: "0052CC"},
	"Notion":         {Logo: "notion", Color: "000000"},
	"Slack":          {Logo: "slack", Color: "4A154B"},
	"Discord":        {Logo: "discord", Color: "5865F2"},
	"Webpack":        {Logo: "webpack", Color: "8DD6F9"},
	"Vite":           {Logo: "vite", Color: "646CFF"},
	"Babel":          {Logo: "babel", Color: "F9DC3E"},
	"ESLint":         {Logo: "eslint", Color: "4B32C3"},
	"Prettier":       {Logo: "prettier", Color: "F7B93E"},
	"npm":            {Logo: "npm", Color: "CB3837"},
	"Yarn":           {Logo: "yarn", Color: "2C8EBB"},
	"pnpm":           {Logo: "pnpm", Color: "F69220"},
	"Bun":            {Logo: "bun", Color: "FBF0DF"},
}

// skillicons.dev slugs keyed by display name.
//
//nolint:gochecknoglobals // static lookup table
var slugs = map[string]string{
	// Languages
	"JavaScript": "js", "TypeScript": "ts", "Python": "py", "Java": "java",
	"C": "c", "C++": "cpp", "C#": "cs", "Go": "go", "Rust": "rust",
	"Ruby": "ruby", "PHP": "php", "Swift": "swift", "Kotlin": "kotlin",
	"Dart": "dart", "Scala": "scala", "R": "r", "Lua": "lua", "Perl": "perl",
	"Haskell": "haskell", "Elixir": "elixir", "Clojure": "clojure",
	"Julia": "julia", "Objective-C": "objectivec", "Assembly": "assembly",
	"Solidity": "solidity", "MATLAB": "matlab", "Bash": "bash", "PowerShell": "powershell",

	// Frameworks
	"React": "react", "Next.js": "nextjs", "Vue.js": "vue", "Nuxt.js": "nuxtjs",
	"Angular": "angular", "Svelte": "svelte", "Node.js": "nodejs",
	"Express": "express", "NestJS": "nestjs", "Django": "django",
	"Flask": "flask", "FastAPI": "fastapi", "Spring": "spring",
	"Rails": "rails", "Laravel": "laravel", "ASP.NET": "dotnet",
	"Flutter": "flutter", "React Native": "react", "Electron": "electron",
	"Tauri": "tauri", "Qt": "qt", "Remix": "remix", "Astro": "astro",
	"Gatsby": "gatsby", "Hugo": "hugo", "Tailwind CSS": "tailwind",
	"Bootstrap": "bootstrap", "Material UI": "materialui", "Chakra UI": "chakra",
	"Styled Components": "styledcomponents", "Sass": "sass", "Redux": "redux",
	"GraphQL": "graphql", "Apollo": "apollo", "tRPC": "trpc", "Prisma": "prisma",
	"Drizzle": "drizzle", "Socket.io": "socketdotio", "Three.js": "threejs",
	"TensorFlow": "tensorflow", "PyTorch": "pytorch", "Keras": "keras",
	"OpenCV": "opencv", "Pandas": "pandas", "NumPy": "numpy",
	"Scikit-learn": "scikitlearn",

	// Tools
	"Git": "git", "GitHub": "github", "GitLab": "gitlab", "Bitbucket": "bitbucket",
	"Docker": "docker", "Kubernetes": "kubernetes", "AWS": "aws",
	"Azure": "azure", "Google Cloud": "gcp", "Vercel": "vercel",
	"Netlify": "netlify", "Heroku": "heroku", "DigitalOcean": "digitalocean",
	"Cloudflare": "cloudflare", "Firebase": "firebase", "Supabase": "supabase",
	"MongoDB": "mongodb", "PostgreSQL": "postgres", "MySQL": "mysql",
	"Redis": "redis", "SQLite": "sqlite", "Elasticsearch": "elasticsearch",
	"Nginx": "nginx", "Apache": "apache", "Linux": "linux", "Ubuntu": "ubuntu",
	"Debian": "debian", "macOS": "apple", "Windows": "windows",
	"VS Code": "vscode", "IntelliJ": "idea", "Vim": "vim", "Neovim": "neovim",
	"Figma": "figma", "Adobe XD": "xd", "Photoshop": "ps", "Illustrator": "ai",
	"Blender": "blender", "Unity": "unity", "Unreal Engine": "unreal",
	"Postman": "postman", "Insomnia": "insomnia", "Jest": "jest",
	"Cypress": "cypress", "Playwright": "playwright", "Selenium": "selenium",
	"Jenkins": "jenkins", "CircleCI": "circleci", "GitHub Actions": "githubactions",
	"Terraform": "terraform", "Ansible": "ansible", "Grafana": "grafana",
	"Prometheus": "prometheus", "Datadog": "datadog", "Sentry": "sentry",
	"Jira": "jira", "Notion": "notion", "Slack": "slack", "Discord": "discord",
	"Webpack": "webpack", "Vite": "vite", "Babel": "babel", "ESLint": "eslint",
	"Prettier": "prettier", "npm": "npm", "Yarn": "yarn", "pnpm": "pnpm",
	"Bun": "bun",
}

// Preset is a ready-made project badge offered for quick selection.
type Preset struct {
	Label    string
	Message  string
	LogoName string
	Color    string
}

// Presets returns the quick-pick project badges in display order.
func Presets() (presets []Preset) {
	presets = []Preset{
		{Label: "npm", LogoName: "npm", Color: "CB3837"},
		{Label: "license", Color: "0080ff"},
		{Label: "build", Message: "passing", Color: "brightgreen"},
		{Label: "tests", Message: "passing", Color: "brightgreen"},
		{Label: "TypeScript", Message: "5.0+", LogoName: "typescript", Color: "3178C6"},
		{Label: "React", Message: "18+", LogoName: "react", Color: "61DAFB"},
		{Label: "Node.js", Message: "18+", LogoName: "nodedotjs", Color: "339933"},
		{Label: "PRs", Message: "welcome", Color: "brightgreen"},
		{Label: "downloads", LogoName: "npm", Color: "blue"},
		{Label: "stars", LogoName: "github", Color: "yellow"},
	}
	return presets
}

// LookupShield returns the shield metadata for a display name.
func LookupShield(name string) (shield Shield, ok bool) {
	shield, ok = shields[name]
	return shield, ok
}

// LookupSlug returns the skillicons.dev slug for a display name.
func LookupSlug(name string) (slug string, ok bool) {
	slug, ok = slugs[name]
	return slug, ok
}
